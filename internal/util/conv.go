package util

import (
	"strconv"
)

func Uitoa(n uint) string {
	return strconv.FormatUint(uint64(n), 10)
}
