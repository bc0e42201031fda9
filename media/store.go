// Package media keeps uploaded note images and synthesized audio on local disk.
package media

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// AudioURLPrefix is the path under which the audio directory is served.
const AudioURLPrefix = "/static/audio/"

const timestampLayout = "20060102_150405"

// Store writes payloads verbatim. Nothing is resized or transcoded.
type Store struct {
	ImagesDir     string
	AudioDir      string
	PublicBaseURL string

	// Now is replaceable so tests can pin file names.
	Now func() time.Time
}

// SavedImage describes a stored note image.
type SavedImage struct {
	FileName  string
	SavedPath string
	FullPath  string
}

// SavedAudio describes a stored audio file and the URL it is served from.
type SavedAudio struct {
	FileName string
	URL      string
}

// New creates the image and audio directories once.
func New(uploadRoot, audioDir, publicBaseURL string) (*Store, error) {
	s := &Store{
		ImagesDir:     filepath.Join(uploadRoot, "images"),
		AudioDir:      audioDir,
		PublicBaseURL: publicBaseURL,
		Now:           time.Now,
	}
	for _, dir := range []string{s.ImagesDir, s.AudioDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create %s: %w", dir, err)
		}
	}
	return s, nil
}

// ImageFileName is <user_id>_<YYYYMMDD_HHMMSS><ext>. Two uploads by the same
// user within one second share a name and the second overwrites the first.
func (s *Store) ImageFileName(userID int, originalName string) string {
	return strconv.Itoa(userID) + "_" + s.Now().Format(timestampLayout) + filepath.Ext(originalName)
}

// AudioFileName is <YYYYMMDD_HHMMSS>_<original base name>.
func (s *Store) AudioFileName(originalName string) string {
	return s.Now().Format(timestampLayout) + "_" + filepath.Base(filepath.Clean("/"+originalName))
}

// SaveImage streams src into the images directory.
func (s *Store) SaveImage(userID int, originalName string, src io.Reader) (SavedImage, error) {
	name := s.ImageFileName(userID, originalName)
	savedPath := filepath.Join(s.ImagesDir, name)
	if err := writeFile(savedPath, src); err != nil {
		return SavedImage{}, err
	}
	fullPath, err := filepath.Abs(savedPath)
	if err != nil {
		return SavedImage{}, fmt.Errorf("resolve %s: %w", savedPath, err)
	}
	return SavedImage{FileName: name, SavedPath: savedPath, FullPath: fullPath}, nil
}

// SaveAudio streams src into the audio directory and returns its public URL.
func (s *Store) SaveAudio(originalName string, src io.Reader) (SavedAudio, error) {
	name := s.AudioFileName(originalName)
	if err := writeFile(filepath.Join(s.AudioDir, name), src); err != nil {
		return SavedAudio{}, err
	}
	return SavedAudio{FileName: name, URL: s.AudioURL(name)}, nil
}

func (s *Store) AudioURL(fileName string) string {
	return s.PublicBaseURL + AudioURLPrefix + fileName
}

// AudioHandler serves the audio directory by exact file name. It is meant to
// be mounted at AudioURLPrefix. Directories are never listed.
func (s *Store) AudioHandler() http.Handler {
	return http.StripPrefix(AudioURLPrefix, http.FileServer(filesOnly{http.Dir(s.AudioDir)}))
}

// filesOnly hides directories so FileServer answers 404 instead of an index.
type filesOnly struct {
	fs http.FileSystem
}

func (f filesOnly) Open(name string) (http.File, error) {
	file, err := f.fs.Open(name)
	if err != nil {
		return nil, err
	}
	info, err := file.Stat()
	if err != nil {
		_ = file.Close()
		return nil, err
	}
	if info.IsDir() {
		_ = file.Close()
		return nil, os.ErrNotExist
	}
	return file, nil
}

func writeFile(path string, src io.Reader) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if _, err := io.Copy(f, src); err != nil {
		_ = f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}
