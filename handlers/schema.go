package handlers

import (
	"net/http"

	"github.com/andrewpaige1/studynote-api/schema"
)

func (db *DBHandler) AlterStudyMaterialsTable(r *http.Request) (any, error) {
	changed, err := schema.EvolveStudyMaterials(r.Context(), db.DB)
	if err != nil {
		return nil, storeFailure(err)
	}
	if !changed {
		return messageResponse{Status: "success", Message: "study_materials already has the analysis columns"}, nil
	}
	return messageResponse{Status: "success", Message: "added analysis_type, ocr_text, length_option and index"}, nil
}

// Healthz pings the store.
func (db *DBHandler) Healthz(r *http.Request) (any, error) {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return nil, storeFailure(err)
	}
	if err := sqlDB.PingContext(r.Context()); err != nil {
		return nil, storeFailure(err)
	}
	return statusResponse{Status: "ok"}, nil
}
