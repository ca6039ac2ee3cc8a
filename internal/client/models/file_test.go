package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NitinMohan03/photo-album-cli/internal/common"
)

func pf(name, ct string) PendingFile {
	return PendingFile{Name: name, ContentType: ct, Data: []byte(name), Size: int64(len(name))}
}

func TestContentTypeAllowed(t *testing.T) {
	tests := []struct {
		ct   string
		want bool
	}{
		{"image/png", true},
		{"image/jpg", true},
		{"image/jpeg", true},
		{"application/pdf", false},
		{"image/gif", false},
		{"IMAGE/PNG", false},
		{"", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ContentTypeAllowed(tt.ct), tt.ct)
	}
}

func TestPendingList_AddFiltersAndKeepsOrder(t *testing.T) {
	var l PendingList

	added := l.Add(
		pf("a.png", "image/png"),
		pf("doc.pdf", "application/pdf"),
		pf("b.jpg", "image/jpeg"),
		pf("c.gif", "image/gif"),
		pf("d.jpeg", "image/jpg"),
	)

	assert.Equal(t, 3, added)
	items := l.Items()
	require.Len(t, items, 3)
	assert.Equal(t, "a.png", items[0].Name)
	assert.Equal(t, "b.jpg", items[1].Name)
	assert.Equal(t, "d.jpeg", items[2].Name)
}

func TestPendingList_DropsPdfKeepsPng(t *testing.T) {
	// A PNG and a PDF dropped together: only the PNG survives.
	var l PendingList
	l.Add(pf("photo.png", "image/png"), pf("report.pdf", "application/pdf"))

	items := l.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "photo.png", items[0].Name)
}

func TestPendingList_DuplicatesAreKept(t *testing.T) {
	var l PendingList
	l.Add(pf("same.png", "image/png"), pf("same.png", "image/png"))
	assert.Equal(t, 2, l.Len())
}

func TestPendingList_RemoveAt(t *testing.T) {
	tests := []struct {
		name      string
		removeIdx int
		wantNames []string
		wantErr   error
	}{
		{name: "remove first", removeIdx: 0, wantNames: []string{"b.png", "c.png"}},
		{name: "remove middle", removeIdx: 1, wantNames: []string{"a.png", "c.png"}},
		{name: "remove last", removeIdx: 2, wantNames: []string{"a.png", "b.png"}},
		{name: "negative index", removeIdx: -1, wantErr: common.ErrIndexOutOfRange},
		{name: "index past end", removeIdx: 3, wantErr: common.ErrIndexOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var l PendingList
			l.Add(pf("a.png", "image/png"), pf("b.png", "image/png"), pf("c.png", "image/png"))

			err := l.RemoveAt(tt.removeIdx)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, 3, l.Len())
				return
			}

			require.NoError(t, err)
			items := l.Items()
			require.Len(t, items, len(tt.wantNames))
			for i, want := range tt.wantNames {
				assert.Equal(t, want, items[i].Name)
			}
		})
	}
}

func TestPendingList_Clear(t *testing.T) {
	var l PendingList
	l.Add(pf("a.png", "image/png"))
	l.Clear()
	assert.Equal(t, 0, l.Len())
	assert.Empty(t, l.Items())
}

func TestPendingList_ItemsIsACopy(t *testing.T) {
	var l PendingList
	l.Add(pf("a.png", "image/png"))

	items := l.Items()
	items[0].Name = "mutated"

	assert.Equal(t, "a.png", l.Items()[0].Name)
}
