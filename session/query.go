package session

import (
	"strings"

	"github.com/frostyeti/kpx/exitcode"
	"github.com/frostyeti/kpx/profiles"
)

// ProfileDelim separates an inline profile selector from the entry key in a
// single token, e.g. "work__Servers/db1".
const ProfileDelim = "__"

// SplitProfile interprets a positional token list as [PROFILE] KEY... and
// returns the selected profile name plus the remaining tokens. A profile
// already pinned by flag or environment wins; otherwise the first token is
// consumed when it names an existing profile, either alone or as a
// "name__rest" prefix.
func SplitProfile(store *profiles.Store, pinned string, args []string) (string, []string) {
	if pinned != "" {
		return pinned, args
	}
	if len(args) == 0 {
		return "", nil
	}

	first := args[0]
	if name, rest, ok := strings.Cut(first, ProfileDelim); ok && store.Exists(name) {
		out := args[1:]
		if rest != "" {
			out = append([]string{rest}, out...)
		}
		return name, out
	}
	if store.Exists(first) {
		return first, args[1:]
	}
	return "", args
}

// NormalizeKey joins the tokens into one entry key and collapses the
// " / " path-separator convention so that "A / B / C" and "A/B/C" address
// the same entry. Normalization is idempotent.
func NormalizeKey(tokens []string) string {
	key := strings.Join(tokens, " ")
	for {
		collapsed := strings.ReplaceAll(key, " / ", "/")
		collapsed = strings.ReplaceAll(collapsed, "/ ", "/")
		collapsed = strings.ReplaceAll(collapsed, " /", "/")
		if collapsed == key {
			return key
		}
		key = collapsed
	}
}

// SplitAttachment splits an extraction token list into the entry key and the
// attachment file name (the final token). At least two tokens are required.
func SplitAttachment(tokens []string) (key, file string, err error) {
	if len(tokens) < 2 {
		return "", "", exitcode.Errorf(exitcode.MissingAttachment,
			"extract needs an entry key and an attachment name")
	}
	return NormalizeKey(tokens[:len(tokens)-1]), tokens[len(tokens)-1], nil
}
