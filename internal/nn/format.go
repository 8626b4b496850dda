package nn

import (
	"fmt"
	"strings"
)

// String dumps every layer's width, weights and biases for debugging.
func (n *Network) String() string {
	var sb strings.Builder
	for i, l := range n.layers {
		fmt.Fprintf(&sb, "%d:\n", i)
		fmt.Fprintf(&sb, "    neurons: %d\n", l.neurons)
		fmt.Fprintf(&sb, "    weight: \n%s\n", l.weight.Value())
		fmt.Fprintf(&sb, "    bias: \n%s\n", l.bias.Value())
	}
	return sb.String()
}
