package matrix

import (
	"strconv"
	"strings"
)

// String renders the matrix as brace-delimited rows, for debugging only:
//
//	{{1, 2, 3},
//	 {4, 5, 6}}
//
// The format is not meant to be parsed back.
func (m *Matrix) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for y := 0; y < m.height; y++ {
		if y != 0 {
			sb.WriteString(",\n ")
		}
		sb.WriteByte('{')
		for x := 0; x < m.width; x++ {
			if x != 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(strconv.FormatFloat(m.data[y*m.width+x], 'f', -1, 64))
		}
		sb.WriteByte('}')
	}
	sb.WriteByte('}')
	return sb.String()
}
