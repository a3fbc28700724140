package model

var Project = Kind{
	Name: "project",
	Path: "projects",
	Fields: []Field{
		{Name: "name", Type: String},
		{Name: "description", Type: String},
		{Name: "url", Type: String},
		{Name: "repository", Type: String},
		{Name: "technologies", Type: Array},
	},
}
