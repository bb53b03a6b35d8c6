package common

import (
	"fmt"
	"regexp"
	"sync"
)

var (
	regexCache   = make(map[string]*regexp.Regexp)
	regexCacheMu sync.RWMutex
)

// CompileRegex compiles a pattern once and reuses the result on later calls.
func CompileRegex(pattern string) (*regexp.Regexp, error) {
	regexCacheMu.RLock()
	re, ok := regexCache[pattern]
	regexCacheMu.RUnlock()
	if ok {
		return re, nil
	}

	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid pattern %q: %w", pattern, err)
	}

	regexCacheMu.Lock()
	regexCache[pattern] = re
	regexCacheMu.Unlock()
	return re, nil
}

// MatchRegex compiles and matches a regex pattern against a string.
// Returns an error if the pattern is invalid.
func MatchRegex(pattern, text string) (bool, error) {
	re, err := CompileRegex(pattern)
	if err != nil {
		return false, err
	}
	return re.MatchString(text), nil
}
