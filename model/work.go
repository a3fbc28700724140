package model

var Work = Kind{
	Name: "work",
	Path: "works",
	Fields: []Field{
		{Name: "company", Type: String},
		{Name: "position", Type: String},
		{Name: "startDate", Type: Date},
		{Name: "endDate", Type: Date},
		{Name: "description", Type: String},
	},
}
