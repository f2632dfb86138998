//go:build sonic

package aggregator

import (
	"github.com/bytedance/sonic"
)

var jsonMarshal = sonic.Marshal
