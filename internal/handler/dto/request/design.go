package request

type GenerateDesignRequest struct {
	Prompt               string  `json:"prompt" binding:"required"`
	StylePreset          string  `json:"stylePreset"`
	ProductTypeID        string  `json:"productTypeId" binding:"required"`
	Size                 string  `json:"size" binding:"required"`
	FrameColor           *string `json:"frameColor,omitempty"`
	ReferenceImageBase64 string  `json:"referenceImageBase64,omitempty"`
}
