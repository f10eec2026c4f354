package objecturl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDownload(t *testing.T) {
	got := Download("https://objects.example.com", "estatedesk", "properties/abc/photos/house.jpg", "tok-123")
	assert.Equal(t,
		"https://objects.example.com/v0/b/estatedesk/o/properties%2Fabc%2Fphotos%2Fhouse.jpg?alt=media&token=tok-123",
		got,
	)
}

func TestNewTokenUnique(t *testing.T) {
	assert.NotEqual(t, NewToken(), NewToken())
}
