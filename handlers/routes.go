package handlers

import (
	"net/http"

	"github.com/andrewpaige1/studynote-api/media"
)

func (db *DBHandler) Register(mux *http.ServeMux) {
	// Study materials, questions and answers
	mux.HandleFunc("POST /save-summary", db.serve(transportPolicy, db.SaveSummary))
	mux.HandleFunc("POST /save-question", db.serve(payloadPolicy, db.SaveQuestion))
	mux.HandleFunc("POST /save-answer", db.serve(payloadPolicy, db.SaveAnswer))
	mux.HandleFunc("POST /save_wrong_answer", db.serve(payloadPolicy, db.SaveWrongAnswer))
	mux.HandleFunc("GET /get-wrong-answers", db.serve(payloadPolicy, db.GetWrongAnswers))
	mux.HandleFunc("GET /get-next-wrong-question", db.serve(payloadPolicy, db.GetNextWrongQuestion))

	// Schema
	mux.HandleFunc("POST /alter-study-materials-table", db.serve(payloadPolicy, db.AlterStudyMaterialsTable))

	// Note analysis
	mux.HandleFunc("POST /save-note-analysis", db.serve(payloadPolicy, db.SaveNoteAnalysis))
	mux.HandleFunc("POST /save-note-analysis-complete", db.serve(payloadPolicy, db.SaveNoteAnalysisComplete))
	mux.HandleFunc("GET /get-note-analysis", db.serve(payloadPolicy, db.GetNoteAnalysis))
	mux.HandleFunc("GET /get-note-analysis-detail/{material_id}", db.serve(payloadPolicy, db.GetNoteAnalysisDetail))
	mux.HandleFunc("DELETE /delete-note-analysis/{material_id}", db.serve(payloadPolicy, db.DeleteNoteAnalysis))

	// Uploads
	mux.HandleFunc("POST /upload-note-image", db.serve(transportPolicy, db.UploadNoteImage))
	mux.HandleFunc("POST /save-note-ocr", db.serve(transportPolicy, db.SaveNoteOCR))
	mux.HandleFunc("POST /upload-tts-audio", db.serve(transportPolicy, db.UploadTTSAudio))
	mux.Handle("GET "+media.AudioURLPrefix, db.Media.AudioHandler())

	mux.HandleFunc("GET /healthz", db.serve(transportPolicy, db.Healthz))
}
