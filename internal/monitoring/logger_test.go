package monitoring

import (
	"fmt"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetLogger(t *testing.T) {
	t.Cleanup(func() { Logf = log.Printf })

	var got []string
	SetLogger(func(format string, v ...interface{}) {
		got = append(got, fmt.Sprintf(format, v...))
	})
	Logf("loaded %d icons", 3)
	assert.Equal(t, []string{"loaded 3 icons"}, got)

	SetLogger(nil)
	assert.NotPanics(t, func() { Logf("dropped %s", "line") })
	assert.Len(t, got, 1)
}
