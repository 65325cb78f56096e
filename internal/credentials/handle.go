package credentials

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
)

// Word lists for kid-friendly player handles
var adjectives = []string{
	"happy", "sunny", "brave", "bright", "swift", "clever", "jolly", "mighty",
	"lucky", "magic", "bouncy", "cheerful", "gentle", "lively", "merry", "quick",
	"cosmic", "sleepy", "fluffy", "shiny", "tiny", "giant", "silver", "golden",
}

var nouns = []string{
	"fox", "panda", "tanuki", "crane", "koi", "owl", "rabbit", "cat",
	"dragon", "turtle", "deer", "monkey", "frog", "sparrow", "bear", "squirrel",
	"ninja", "samurai", "comet", "cloud", "maple", "sakura", "bamboo", "lantern",
}

// ErrHandleExhausted is returned when no free handle was found
var ErrHandleExhausted = errors.New("could not find a free handle")

const (
	plainAttempts    = 5
	suffixedAttempts = 20
)

// GenerateHandle returns a random handle in the format "adjective-noun".
// taken reports whether a candidate is already in use; after a few clashes
// a two digit suffix is added.
func GenerateHandle(taken func(string) (bool, error)) (string, error) {
	for i := 0; i < plainAttempts+suffixedAttempts; i++ {
		candidate, err := randomHandle()
		if err != nil {
			return "", err
		}
		if i >= plainAttempts {
			n, err := rand.Int(rand.Reader, big.NewInt(90))
			if err != nil {
				return "", err
			}
			candidate = fmt.Sprintf("%s-%d", candidate, n.Int64()+10)
		}

		used, err := taken(candidate)
		if err != nil {
			return "", err
		}
		if !used {
			return candidate, nil
		}
	}
	return "", ErrHandleExhausted
}

func randomHandle() (string, error) {
	adjective, err := randomElement(adjectives)
	if err != nil {
		return "", err
	}

	noun, err := randomElement(nouns)
	if err != nil {
		return "", err
	}

	return adjective + "-" + noun, nil
}

// randomElement picks a random element from a string slice
func randomElement(slice []string) (string, error) {
	if len(slice) == 0 {
		return "", nil
	}

	num, err := rand.Int(rand.Reader, big.NewInt(int64(len(slice))))
	if err != nil {
		return "", err
	}

	return slice[num.Int64()], nil
}
