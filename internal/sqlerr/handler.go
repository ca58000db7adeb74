package sqlerr

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/deppfellow/listings-api/internal/errs"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// entities names each table the way API clients know it.
var entities = map[string]string{
	"users":          "User",
	"listings":       "Listing",
	"saved_listings": "Saved Listing",
}

// violation describes how a constraint violation is reported: the code
// suffix after the entity, and whether the message may be shown verbatim.
type violation struct {
	action   string
	override bool
	message  func(e *Error) string
}

var violations = map[Code]violation{
	ForeignKeyViolation: {
		action: "NOT_FOUND",
		message: func(e *Error) string {
			return fmt.Sprintf("The referenced %s does not exist", referencedEntity(e))
		},
	},
	UniqueViolation: {
		action:   "ALREADY_EXISTS",
		override: true,
		message: func(e *Error) string {
			field := humanizeText(constraintColumn(e.TableName, e.ConstraintName, "_key"))
			if field == "" {
				field = "identifier"
			}
			return fmt.Sprintf("A %s with this %s already exists", entityName(e.TableName), field)
		},
	},
	NotNullViolation: {
		action:   "REQUIRED",
		override: true,
		message: func(e *Error) string {
			if e.ColumnName == "" {
				return "A required field is missing"
			}
			return fmt.Sprintf("The %s is required", humanizeText(e.ColumnName))
		},
	},
	CheckViolation: {
		action:   "INVALID",
		override: true,
		message: func(e *Error) string {
			if e.ColumnName == "" {
				return "One or more values do not meet required conditions"
			}
			return fmt.Sprintf("The %s value does not meet required conditions", humanizeText(e.ColumnName))
		},
	},
}

// ConvertPgError converts a raw *pgconn.PgError into an *Error.
func ConvertPgError(src *pgconn.PgError) *Error {
	return &Error{
		Code:           MapCode(src.Code),
		Severity:       MapSeverity(src.Severity),
		DatabaseCode:   src.Code,
		Message:        src.Message,
		SchemaName:     src.SchemaName,
		TableName:      src.TableName,
		ColumnName:     src.ColumnName,
		DataTypeName:   src.DataTypeName,
		ConstraintName: src.ConstraintName,
		driverErr:      src,
	}
}

// HandleError converts a low-level database error into an *errs.HTTPError.
// Constraint violations become 400s, a missing row a 404, and anything else
// an opaque 500. An *errs.HTTPError is returned unchanged.
func HandleError(err error) *errs.HTTPError {
	var httpErr *errs.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}

	var pgerr *pgconn.PgError
	if errors.As(err, &pgerr) {
		return fromSQLError(ConvertPgError(pgerr))
	}

	if errors.Is(err, pgx.ErrNoRows) || errors.Is(err, sql.ErrNoRows) {
		return errs.NewNotFoundError("Resource not found", false, nil)
	}

	return errs.NewInternalServerError()
}

func fromSQLError(e *Error) *errs.HTTPError {
	v, ok := violations[e.Code]
	if !ok {
		return errs.NewInternalServerError()
	}

	code := entityCode(e.TableName) + "_" + v.action

	var fields errs.FieldErrors
	if e.Code == NotNullViolation && e.ColumnName != "" {
		fields = errs.FieldErrors{}
		fields.Add(strings.ToLower(e.ColumnName), "is required")
	}

	return errs.NewBadRequestError(v.message(e), v.override, &code, fields)
}

// entityName is the client-facing name of table: "saved_listings" ->
// "Saved Listing". Unknown tables are singularized and title-cased.
func entityName(table string) string {
	if name, ok := entities[table]; ok {
		return name
	}
	if table == "" {
		return "Record"
	}
	return humanizeText(strings.TrimSuffix(table, "s"))
}

// entityCode is entityName as a code prefix: "Saved Listing" -> "SAVED_LISTING".
func entityCode(table string) string {
	return errs.MakeUpperCaseWithUnderscores(entityName(table))
}

// referencedEntity names the row a foreign key points at. PostgreSQL does
// not report the column for these, so it is taken from the constraint
// ("saved_listings_listing_id_fkey" -> "Listing") when missing.
func referencedEntity(e *Error) string {
	column := e.ColumnName
	if column == "" {
		column = constraintColumn(e.TableName, e.ConstraintName, "_fkey")
	}

	column = strings.TrimSuffix(strings.ToLower(column), "_id")
	if column == "" {
		return "record"
	}
	return humanizeText(column)
}

// constraintColumn extracts the column from a default constraint name of
// the form <table>_<column><suffix>.
func constraintColumn(table, constraint, suffix string) string {
	if table == "" || !strings.HasPrefix(constraint, table+"_") || !strings.HasSuffix(constraint, suffix) {
		return ""
	}
	return strings.TrimSuffix(strings.TrimPrefix(constraint, table+"_"), suffix)
}

// humanizeText converts snake_case into Title Case ("password_hash" -> "Password Hash").
func humanizeText(text string) string {
	return cases.Title(language.English).String(strings.ReplaceAll(text, "_", " "))
}
