package pricing

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

var (
	ErrMalformedPageRange = errors.New("malformed page range")
	ErrPageOutOfRange     = errors.New("page out of range")
)

// PageSelection is the deduplicated set of pages referenced by a page-range
// expression.
type PageSelection struct {
	Pages []int
}

func (s PageSelection) Count() int {
	return len(s.Pages)
}

// ParsePageRange parses expressions like "1-5,8,11-13" against a document of
// totalPages pages.
//
// Every referenced page must lie within [1, totalPages]; a single
// out-of-bounds page rejects the whole expression. Duplicate references are
// deduplicated. An empty expression selects zero pages and is not an error;
// callers that want "all pages" skip the parser and use totalPages directly.
func ParsePageRange(expression string, totalPages int) (PageSelection, error) {
	expression = strings.TrimSpace(expression)
	if expression == "" {
		return PageSelection{}, nil
	}
	if totalPages <= 0 {
		return PageSelection{}, fmt.Errorf("%w: document has %d pages", ErrInvalidPageCount, totalPages)
	}

	seen := make(map[int]bool)
	for _, token := range strings.Split(expression, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			return PageSelection{}, fmt.Errorf("%w: empty token in %q", ErrMalformedPageRange, expression)
		}

		from, to, err := parseToken(token)
		if err != nil {
			return PageSelection{}, err
		}
		for page := from; page <= to; page++ {
			if page < 1 || page > totalPages {
				return PageSelection{}, fmt.Errorf("%w: page %d exceeds document length %d", ErrPageOutOfRange, page, totalPages)
			}
			seen[page] = true
		}
	}

	pages := make([]int, 0, len(seen))
	for page := range seen {
		pages = append(pages, page)
	}
	sort.Ints(pages)
	return PageSelection{Pages: pages}, nil
}

func parseToken(token string) (from, to int, err error) {
	if before, after, ok := strings.Cut(token, "-"); ok {
		from, err = parsePageNumber(before, token)
		if err != nil {
			return 0, 0, err
		}
		to, err = parsePageNumber(after, token)
		if err != nil {
			return 0, 0, err
		}
		if from > to {
			return 0, 0, fmt.Errorf("%w: descending range %q", ErrMalformedPageRange, token)
		}
		return from, to, nil
	}

	from, err = parsePageNumber(token, token)
	if err != nil {
		return 0, 0, err
	}
	return from, from, nil
}

func parsePageNumber(s, token string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: token %q is not a page number", ErrMalformedPageRange, token)
	}
	if n < 1 {
		return 0, fmt.Errorf("%w: page %d is below 1", ErrPageOutOfRange, n)
	}
	return n, nil
}
