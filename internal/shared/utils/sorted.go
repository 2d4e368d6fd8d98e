package utils

import "sort"

// Order selects ascending or descending output.
type Order string

const (
	OrderAsc  Order = "asc"
	OrderDesc Order = "desc"
)

// SortedValues returns the values of m sorted byte-wise. An unknown order
// yields nil.
func SortedValues(m map[string]string, order Order) []string {
	if order != OrderAsc && order != OrderDesc {
		return nil
	}

	values := make([]string, 0, len(m))
	for _, v := range m {
		values = append(values, v)
	}

	if order == OrderAsc {
		sort.Strings(values)
	} else {
		sort.Sort(sort.Reverse(sort.StringSlice(values)))
	}
	return values
}
