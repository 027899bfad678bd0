package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPages_Complete(t *testing.T) {
	for _, p := range []Page{HowItWorks, Privacy} {
		t.Run(p.Title, func(t *testing.T) {
			assert.NotEmpty(t, p.Title)
			assert.Len(t, p.Sections, 3)
			for _, s := range p.Sections {
				assert.NotEmpty(t, s.Heading)
				assert.NotEmpty(t, s.Text)
			}
		})
	}
}
