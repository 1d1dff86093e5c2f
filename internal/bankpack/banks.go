package bankpack

import (
	"errors"
	"fmt"
	"slices"
)

// ParseBankIDs parses a bank list as supplied on the command line:
// one hex digit per physical bank slot, pairwise distinct. The order
// is kept; banks are assigned ids in list order.
func ParseBankIDs(s string) ([]int, error) {
	if s == "" {
		return nil, errors.New("bankpack: empty bank list")
	}
	ids := make([]int, 0, len(s))
	for _, r := range s {
		var id int
		switch {
		case r >= '0' && r <= '9':
			id = int(r - '0')
		case r >= 'a' && r <= 'f':
			id = int(r-'a') + 10
		case r >= 'A' && r <= 'F':
			id = int(r-'A') + 10
		default:
			return nil, fmt.Errorf("bankpack: bank not hex digit: %q", r)
		}
		if slices.Contains(ids, id) {
			return nil, fmt.Errorf("bankpack: bank duplicated: %q", r)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
