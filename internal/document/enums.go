package document

// DocumentDataType is how the document bytes are carried.
type DocumentDataType string

const (
	DocumentDataTypeS3Path  DocumentDataType = "S3_PATH"
	DocumentDataTypeBytes   DocumentDataType = "BYTES"
	DocumentDataTypeBytes64 DocumentDataType = "BYTES_64"
)

// DocumentDataTypes lists every declared DocumentDataType.
func DocumentDataTypes() []DocumentDataType {
	return []DocumentDataType{
		DocumentDataTypeS3Path,
		DocumentDataTypeBytes,
		DocumentDataTypeBytes64,
	}
}

// FieldType is the kind of an interactive field placed on a page.
type FieldType string

const (
	FieldTypeSignature     FieldType = "SIGNATURE"
	FieldTypeFreeSignature FieldType = "FREE_SIGNATURE"
	FieldTypeInitials      FieldType = "INITIALS"
	FieldTypeName          FieldType = "NAME"
	FieldTypeEmail         FieldType = "EMAIL"
	FieldTypeDate          FieldType = "DATE"
	FieldTypeText          FieldType = "TEXT"
	FieldTypeNumber        FieldType = "NUMBER"
	FieldTypeRadio         FieldType = "RADIO"
	FieldTypeCheckbox      FieldType = "CHECKBOX"
	FieldTypeDropdown      FieldType = "DROPDOWN"
)

// FieldTypes lists every declared FieldType.
func FieldTypes() []FieldType {
	return []FieldType{
		FieldTypeSignature,
		FieldTypeFreeSignature,
		FieldTypeInitials,
		FieldTypeName,
		FieldTypeEmail,
		FieldTypeDate,
		FieldTypeText,
		FieldTypeNumber,
		FieldTypeRadio,
		FieldTypeCheckbox,
		FieldTypeDropdown,
	}
}

func names[T ~string](values []T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}
