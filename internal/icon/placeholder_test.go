package icon

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassOf(t *testing.T) {
	cases := []struct {
		path string
		want fileClass
	}{
		{`C:\Program Files\App\app.exe`, classExecutable},
		{"/opt/tool.AppImage", classExecutable},
		{"/home/u/run.sh", classScript},
		{"/home/u/notes.PDF", classDocument},
		{"/music/track.flac", classAudio},
		{"/video/clip.mkv", classVideo},
		{"/pics/shot.jpeg", classImage},
		{"/usr/share/applications/gimp.desktop", classLink},
		{"/home/u/data.bin", classGeneric},
		{"/home/u/noext", classGeneric},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, classOf(c.path), c.path)
	}
}

func TestPlaceholderNeverNil(t *testing.T) {
	for _, p := range []string{"app.exe", "a.sh", "x.pdf", "y.mp3", "z.mkv", "i.png", "l.lnk", "other"} {
		assert.NotNil(t, Placeholder(p), p)
	}
}
