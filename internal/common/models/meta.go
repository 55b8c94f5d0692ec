package models

// Logger context keys.
const (
	MetaKeyEngine       = "Engine"
	MetaKeyRunID        = "RunID"
	MetaKeyTableName    = "TableName"
	MetaKeyTemplateName = "TemplateName"
	MetaKeyFilePath     = "FilePath"
)
