package model

// UpdateShape is the body accepted by every update route, whatever the kind.
var UpdateShape = []Field{
	{Name: "name", Type: String},
	{Name: "email", Type: String},
}

// UpdateAck is the raw acknowledgment of an update-by-id call.
type UpdateAck struct {
	Acknowledged  bool        `json:"acknowledged"`
	ModifiedCount int64       `json:"modifiedCount"`
	UpsertedID    interface{} `json:"upsertedId"`
	UpsertedCount int64       `json:"upsertedCount"`
	MatchedCount  int64       `json:"matchedCount"`
}

// DeleteAck is the raw acknowledgment of a delete-by-id call.
type DeleteAck struct {
	Acknowledged bool  `json:"acknowledged"`
	DeletedCount int64 `json:"deletedCount"`
}
