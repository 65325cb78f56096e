package database

import (
	"bufio"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// DefaultBadWordsURL is the public word list used to screen player names
const DefaultBadWordsURL = "https://raw.githubusercontent.com/LDNOOBW/List-of-Dirty-Naughty-Obscene-and-Otherwise-Bad-Words/refs/heads/master/en"

// SeedBadWords downloads the word list into bad_words unless it is already populated
func (db *DB) SeedBadWords(url string) error {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM bad_words").Scan(&count); err != nil {
		return fmt.Errorf("failed to check bad words count: %w", err)
	}
	if count > 0 {
		db.log.WithField("count", count).Debug("bad words filter already populated")
		return nil
	}

	client := &http.Client{Timeout: 30 * time.Second}
	resp, err := client.Get(url)
	if err != nil {
		return fmt.Errorf("failed to download bad words list: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("bad status code from bad words URL: %d", resp.StatusCode)
	}

	added := 0
	query := db.Dialect.InsertIgnore("bad_words", "word")
	err = db.WithTx(func(tx *Tx) error {
		scanner := bufio.NewScanner(resp.Body)
		for scanner.Scan() {
			word := strings.TrimSpace(strings.ToLower(scanner.Text()))
			if word == "" {
				continue
			}
			res, err := tx.Exec(query, word)
			if err != nil {
				return fmt.Errorf("failed to insert bad word: %w", err)
			}
			if n, _ := res.RowsAffected(); n > 0 {
				added++
			}
		}
		return scanner.Err()
	})
	if err != nil {
		return err
	}

	db.log.WithField("count", added).Info("bad words filter populated")
	return nil
}

// ContainsBadWord reports whether any word of text is on the bad words list
func (db *DB) ContainsBadWord(text string) (bool, error) {
	for _, word := range strings.Fields(strings.ToLower(text)) {
		var count int
		if err := db.QueryRow("SELECT COUNT(*) FROM bad_words WHERE word = ?", word).Scan(&count); err != nil {
			return false, fmt.Errorf("failed to check bad word: %w", err)
		}
		if count > 0 {
			return true, nil
		}
	}
	return false, nil
}
