package contentsvc

import (
	"regexp"

	"github.com/cobreklo/portafolio-api/internal/common"
)

// youtubeIDPattern extracts the video id from every reference form the
// panel accepts: watch URLs, youtu.be share links, embed URLs, shorts
// URLs and the older /v/ and /u/N/ paths. Group 2 is the candidate id.
var youtubeIDPattern = regexp.MustCompile(`^.*(youtu\.be/|v/|u/\w/|embed/|watch\?v=|&v=|shorts/)([^#&?]*).*`)

var rawVideoIDPattern = regexp.MustCompile(`^[0-9A-Za-z_-]{11}$`)

// ResolveYouTubeID resolves any accepted YouTube reference to its
// 11-character video id. A raw 11-character id passes through unchanged.
// Anything else is a validation error; callers reject before writing.
func ResolveYouTubeID(raw string) (string, error) {
	if rawVideoIDPattern.MatchString(raw) {
		return raw, nil
	}

	match := youtubeIDPattern.FindStringSubmatch(raw)
	if match != nil && len(match[2]) == 11 {
		return match[2], nil
	}

	return "", common.NewError(common.ErrCodeValidationInput,
		"URL de YouTube inválida", common.StatusBadRequest,
		map[string]string{"url": raw})
}
