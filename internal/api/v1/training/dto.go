package training

// TrainModelRequest carries the attributes of a new personalization model
// plus the location of its training archive. Field names match the product's
// wire contract, including the historical "ethinicity" key.
type TrainModelRequest struct {
	Name      string `json:"name" binding:"required"`
	Type      string `json:"type" binding:"required,oneof=Man Woman Other"`
	Age       int    `json:"age" binding:"required,min=1,max=100"`
	Ethnicity string `json:"ethinicity" binding:"required,oneof=White Black Asian_American East_Asian South_East_Asian South_Asian Middle_Eastern Pacific Hispanic"`
	EyeColor  string `json:"eyeColor" binding:"required,oneof=Brown Blue Hazel Gray"`
	Bald      *bool  `json:"bald" binding:"required"`
	ZipURL    string `json:"zipUrl" binding:"required"`
}

type TrainModelResponse struct {
	ModelID string `json:"modelId"`
}
