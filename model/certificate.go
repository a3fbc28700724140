package model

var Certificate = Kind{
	Name: "certificate",
	Path: "certificates",
	Fields: []Field{
		{Name: "name", Type: String},
		{Name: "issuer", Type: String},
		{Name: "issueDate", Type: Date},
		{Name: "credentialUrl", Type: String},
	},
}
