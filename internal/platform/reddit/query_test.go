package reddit_test

import (
	"net/url"
	"testing"

	"github.com/phrazzld/postcraft-api/internal/platform/reddit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseQuery(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    reddit.Query
		wantErr error
	}{
		{
			name: "list with limit",
			raw:  "mode=list&sub=technology&limit=5",
			want: reddit.Query{Mode: reddit.ModeList, Sub: "technology", Limit: 5},
		},
		{
			name: "mode defaults to list",
			raw:  "sub=golang",
			want: reddit.Query{Mode: reddit.ModeList, Sub: "golang"},
		},
		{
			name: "unparsable limit ignored",
			raw:  "sub=golang&limit=many",
			want: reddit.Query{Mode: reddit.ModeList, Sub: "golang"},
		},
		{
			name: "zero limit ignored",
			raw:  "sub=golang&limit=0",
			want: reddit.Query{Mode: reddit.ModeList, Sub: "golang"},
		},
		{
			name: "comments",
			raw:  "mode=comments&permalink=/r/technology/comments/abc123/title/&limit=9",
			want: reddit.Query{Mode: reddit.ModeComments, Permalink: "/r/technology/comments/abc123/title/", Limit: 9},
		},
		{name: "missing sub", raw: "mode=list", wantErr: reddit.ErrMissingSub},
		{name: "missing permalink", raw: "mode=comments", wantErr: reddit.ErrInvalidPermalink},
		{name: "relative permalink", raw: "mode=comments&permalink=r/technology", wantErr: reddit.ErrInvalidPermalink},
		{name: "unknown mode", raw: "mode=search&sub=golang", wantErr: reddit.ErrInvalidMode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values, err := url.ParseQuery(tt.raw)
			require.NoError(t, err)

			got, err := reddit.ParseQuery(values)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
