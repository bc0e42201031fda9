package handlers

import (
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"testing"

	"github.com/andrewpaige1/studynote-api/models"
	. "github.com/onsi/gomega"
)

func TestUploadNoteImage(t *testing.T) {
	g := NewWithT(t)
	env := newTestEnv(t, true)

	rr := env.postMultipart(t, "/upload-note-image", map[string]string{"user_id": "12"}, "scan.jpg", "jpeg-bytes")
	g.Expect(rr.Code).To(Equal(http.StatusOK))

	var resp imageUploadResponse
	decodeInto(t, rr, &resp)
	g.Expect(resp.Status).To(Equal("success"))
	g.Expect(resp.FileName).To(Equal("12_20250502_140309.jpg"))
	g.Expect(resp.SavedPath).To(Equal(filepath.Join(env.h.Media.ImagesDir, resp.FileName)))
	g.Expect(filepath.IsAbs(resp.FullPath)).To(BeTrue())

	data, err := os.ReadFile(resp.FullPath)
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(string(data)).To(Equal("jpeg-bytes"))
}

func TestUploadNoteImageMissingFile(t *testing.T) {
	g := NewWithT(t)
	env := newTestEnv(t, true)

	rr := env.postMultipart(t, "/upload-note-image", map[string]string{"user_id": "12"}, "", "")
	g.Expect(rr.Code).To(Equal(http.StatusUnprocessableEntity))
	g.Expect(decodeMap(t, rr)["detail"]).To(ContainSubstring("file"))
}

func TestUploadNoteImageWriteFailureIsServerError(t *testing.T) {
	g := NewWithT(t)
	env := newTestEnv(t, true)
	env.h.Media.ImagesDir = filepath.Join(t.TempDir(), "missing", "dir")

	rr := env.postMultipart(t, "/upload-note-image", map[string]string{"user_id": "12"}, "scan.jpg", "x")
	g.Expect(rr.Code).To(Equal(http.StatusInternalServerError))
	g.Expect(decodeMap(t, rr)["detail"]).To(ContainSubstring("image upload failed"))
}

func TestUploadTTSAudioIsServedStatically(t *testing.T) {
	g := NewWithT(t)
	env := newTestEnv(t, true)

	rr := env.postMultipart(t, "/upload-tts-audio", nil, "summary.mp3", "ID3-audio")
	g.Expect(rr.Code).To(Equal(http.StatusOK))

	var resp audioUploadResponse
	decodeInto(t, rr, &resp)
	g.Expect(resp.Status).To(Equal("success"))
	g.Expect(resp.FileName).To(Equal("20250502_140309_summary.mp3"))
	g.Expect(resp.AudioURL).To(Equal("http://localhost:8000/static/audio/20250502_140309_summary.mp3"))

	u, err := url.Parse(resp.AudioURL)
	g.Expect(err).NotTo(HaveOccurred())
	served := env.get(u.Path)
	g.Expect(served.Code).To(Equal(http.StatusOK))
	body, _ := io.ReadAll(served.Body)
	g.Expect(string(body)).To(Equal("ID3-audio"))
}

func TestSaveNoteOCR(t *testing.T) {
	g := NewWithT(t)
	env := newTestEnv(t, true)

	var resp ocrSavedResponse
	decodeInto(t, env.postForm("/save-note-ocr", url.Values{
		"user_id": {"8"}, "file_name": {"8_20250502_140309.jpg"}, "ocr_text": {"photosynthesis"},
	}), &resp)
	g.Expect(resp.Status).To(Equal("success"))
	g.Expect(resp.OCRText).To(Equal("photosynthesis"))

	var got models.StudyMaterial
	g.Expect(env.h.First(&got, resp.MaterialID).Error).To(Succeed())
	g.Expect(got.AnalysisType).To(Equal(models.AnalysisOCROnly))
	g.Expect(got.Summary).To(BeNil())
	g.Expect(got.TTSAudioURL).To(BeNil())
}

func TestSaveNoteOCRBeforeEvolutionIsServerError(t *testing.T) {
	g := NewWithT(t)
	env := newTestEnv(t, false)

	rr := env.postForm("/save-note-ocr", url.Values{
		"user_id": {"8"}, "file_name": {"a.jpg"}, "ocr_text": {"t"},
	})
	g.Expect(rr.Code).To(Equal(http.StatusInternalServerError))
	g.Expect(decodeMap(t, rr)["detail"]).To(ContainSubstring("OCR save failed"))
}

func TestHealthz(t *testing.T) {
	g := NewWithT(t)
	env := newTestEnv(t, true)

	rr := env.get("/healthz")
	g.Expect(rr.Code).To(Equal(http.StatusOK))
	g.Expect(decodeMap(t, rr)).To(Equal(map[string]any{"status": "ok"}))
}
