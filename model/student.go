package model

var Student = Kind{
	Name: "student",
	Path: "students",
	Fields: []Field{
		{Name: "name", Type: String},
		{Name: "email", Type: String},
		{Name: "phone", Type: String},
		{Name: "university", Type: String},
		{Name: "major", Type: String},
		{Name: "bio", Type: String},
	},
}
