package logging

import (
	"bytes"
	"log"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_levelTags_prefixMessage(t *testing.T) {
	assert := assert.New(t)

	var buf bytes.Buffer
	orig := log.Writer()
	log.SetOutput(&buf)
	log.SetFlags(0)
	defer log.SetOutput(orig)

	Errorf("boom %d", 1)
	Warnf("careful %d", 2)
	Infof("fyi %d", 3)
	Debugf("trace %d", 4)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if !assert.Len(lines, 4) {
		return
	}
	assert.Equal("ERROR boom 1", lines[0])
	assert.Equal("WARN  careful 2", lines[1])
	assert.Equal("INFO  fyi 3", lines[2])
	assert.Equal("DEBUG trace 4", lines[3])
}
