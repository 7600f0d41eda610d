package proxy

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImageProxy_LoadsLazilyOnce(t *testing.T) {
	var buf bytes.Buffer
	p := NewImageProxy(&buf, "cat.png")

	assert.False(t, p.Loaded())
	assert.Empty(t, buf.String(), "creating a proxy does not load the image")

	p.Display()
	assert.True(t, p.Loaded())
	p.Display()

	want := "Loading image from file: cat.png\n" +
		"Displaying image: cat.png\n" +
		"Displaying image: cat.png\n"
	assert.Equal(t, want, buf.String())
}

func TestRealImage_LoadsEagerly(t *testing.T) {
	var buf bytes.Buffer
	NewRealImage(&buf, "dog.png")
	assert.Equal(t, "Loading image from file: dog.png\n", buf.String())
}

func TestDemo(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Demo(&buf))

	want := "Image proxies created.\n" +
		"Loading image from file: photo1.jpg\n" +
		"Displaying image: photo1.jpg\n" +
		"Displaying image: photo1.jpg\n" +
		"Loading image from file: photo2.jpg\n" +
		"Displaying image: photo2.jpg\n"
	assert.Equal(t, want, buf.String())
}
