package value_test

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"kp_generator/internal/domain/value"
)

func TestSafeFileName(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		name   string
		input  string
		output string
	}{
		{
			name:   "Cyrillic with punctuation",
			input:  `ООО "Ромашка"! #1`,
			output: "ООО_Ромашка_1",
		},
		{
			name:   "Latin with hyphens and spaces",
			input:  "Acme  -  Trading Co.",
			output: "Acme_Trading_Co",
		},
		{
			name:   "Empty input",
			input:  "",
			output: "",
		},
		{
			name:   "Only punctuation",
			input:  `"!@#$%^&*()"`,
			output: "",
		},
		{
			name:   "Underscores survive",
			input:  "завод_им_Ленина",
			output: "завод_им_Ленина",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			rq.Equal(tc.output, value.SafeFileName(tc.input))
		})
	}
}

func TestSafeFileNameBounds(t *testing.T) {
	rq := require.New(t)

	long := ""
	for range 30 {
		long += "Ромашка "
	}

	safe := value.SafeFileName(long)

	rq.LessOrEqual(len([]rune(safe)), 50)
	rq.Regexp(regexp.MustCompile(`^[\p{L}\p{N}_-]*$`), safe)
}

func TestArtifactPrefix(t *testing.T) {
	rq := require.New(t)

	at := time.Date(2026, 8, 28, 9, 5, 0, 0, time.UTC)

	rq.Equal("КП_ООО_Ромашка_20260828_0905", value.ArtifactPrefix(`ООО "Ромашка"`, at))
}
