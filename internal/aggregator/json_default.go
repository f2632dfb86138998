//go:build !sonic

package aggregator

import (
	"github.com/goccy/go-json"
)

var jsonMarshal = json.Marshal
