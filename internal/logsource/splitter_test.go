package logsource

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitter(t *testing.T) {
	var s Splitter

	assert.Nil(t, s.Write([]byte("par")))
	assert.Equal(t, []string{"partial", "next"}, s.Write([]byte("tial\nnext\r\nta")))
	assert.Equal(t, []string{"tail", ""}, s.Write([]byte("il\n\n")))

	s.Write([]byte("dangling"))
	s.Reset()
	assert.Equal(t, []string{"fresh"}, s.Write([]byte("fresh\n")))
}
