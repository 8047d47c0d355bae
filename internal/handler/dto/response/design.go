package response

import (
	"time"

	"printcanvas/internal/usecase/commands"
	"printcanvas/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type GenerateDesignResponse struct {
	DesignID          uuid.UUID `json:"designId"`
	GeneratedImageURL string    `json:"generatedImageUrl"`
	CreditsSpent      int32     `json:"creditsSpent"`
	UsedFree          bool      `json:"usedFreeGeneration"`
}

func FromGenerateResult(result *commands.GenerateResult) *GenerateDesignResponse {
	return &GenerateDesignResponse{
		DesignID:          result.DesignID,
		GeneratedImageURL: result.GeneratedImageURL,
		CreditsSpent:      result.CreditsSpent,
		UsedFree:          result.UsedFree,
	}
}

type DesignResponse struct {
	ID                uuid.UUID `json:"id"`
	Prompt            string    `json:"prompt"`
	StylePreset       string    `json:"stylePreset"`
	ProductTypeID     string    `json:"productTypeId"`
	Size              string    `json:"size"`
	FrameColor        *string   `json:"frameColor,omitempty"`
	Status            string    `json:"status"`
	CreditsSpent      int32     `json:"creditsSpent"`
	GeneratedImageURL *string   `json:"generatedImageUrl,omitempty"`
	CreatedAt         time.Time `json:"createdAt"`
}

func FromDesignView(rm *queries.DesignView) *DesignResponse {
	var resp DesignResponse
	_ = copier.Copy(&resp, rm)
	return &resp
}

type DesignListResponse struct {
	Designs []*DesignResponse `json:"designs"`
	Total   int64             `json:"total"`
	HasMore bool              `json:"hasMore"`
}

func FromDesignViews(rms []*queries.DesignView, total int64, hasMore bool) *DesignListResponse {
	items := make([]*DesignResponse, len(rms))
	for i, rm := range rms {
		items[i] = FromDesignView(rm)
	}
	return &DesignListResponse{Designs: items, Total: total, HasMore: hasMore}
}
