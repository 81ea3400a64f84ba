package validation

const registerSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"properties": {
		"email":    {"type": "string", "format": "email"},
		"password": {"type": "string", "minLength": 6},
		"name":     {"type": "string"}
	},
	"required": ["email", "password"]
}`

const loginSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"properties": {
		"email":    {"type": "string", "minLength": 1, "format": "email"},
		"password": {"type": "string", "minLength": 1}
	},
	"required": ["email", "password"]
}`

const forgotPasswordSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"properties": {
		"email": {"type": "string", "format": "email"}
	},
	"required": ["email"]
}`

const resetPasswordSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"properties": {
		"token":    {"type": "string", "minLength": 1},
		"password": {"type": "string", "minLength": 6}
	},
	"required": ["token", "password"]
}`

const budgetPlanSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"properties": {
		"category":      {"type": "string", "minLength": 1},
		"monthlyAmount": {"type": "number", "exclusiveMinimum": 0}
	},
	"required": ["category", "monthlyAmount"]
}`

const savingsAccountSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"properties": {
		"name":              {"type": "string", "minLength": 1},
		"type":              {"enum": ["current", "interest", "goal", "bond"]},
		"balance":           {"type": "number", "minimum": 0},
		"interestRate":      {"type": "number", "minimum": 0, "maximum": 100},
		"interestFrequency": {"enum": ["daily", "monthly", "yearly"]},
		"targetAmount":      {"type": "number", "exclusiveMinimum": 0},
		"maturityDate":      {"type": "string"}
	},
	"required": ["name", "type"]
}`

const paymentProperties = `{
	"category":     {"type": "string", "minLength": 1},
	"amount":       {"type": "number", "exclusiveMinimum": 0},
	"paymentDate":  {"type": "string", "minLength": 1},
	"type":         {"enum": ["recurring", "one-time", "custom"]},
	"budgetPlanId": {"type": ["string", "null"]},
	"frequency":    {"enum": ["weekly", "monthly", "yearly"]},
	"dayOfWeek":    {"type": "integer", "minimum": 0, "maximum": 6},
	"dayOfMonth":   {"type": "integer", "minimum": 1, "maximum": 31},
	"month":        {"type": "integer", "minimum": 0, "maximum": 11},
	"customDates":  {"type": "array", "items": {"type": "string", "minLength": 1}},
	"isPaid":       {"type": "boolean"}
}`

const paymentSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"properties": ` + paymentProperties + `,
	"required": ["category", "amount", "paymentDate", "type"],
	"allOf": [
		{
			"if":   {"properties": {"type": {"const": "recurring"}}},
			"then": {"required": ["frequency"]}
		},
		{
			"if":   {"properties": {"type": {"const": "custom"}}},
			"then": {"required": ["customDates"], "properties": {"customDates": {"minItems": 1}}}
		}
	]
}`

const paymentUpdateSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"properties": ` + paymentProperties + `
}`
