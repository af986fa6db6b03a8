package sqlerr

import (
	"database/sql"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/deppfellow/travel-api/internal/errs"
)

// sqlite reports constraint failures as e.g.
// "NOT NULL constraint failed: destinations.country".
var sqliteConstraintPattern = regexp.MustCompile(`constraint failed: (\w+)\.(\w+)`)

// ErrCode reports the mapped Code for a given error, Other when err is not
// an *Error.
func ErrCode(err error) Code {
	var sqlErr *Error
	if errors.As(err, &sqlErr) {
		return sqlErr.Code
	}
	return Other
}

// ConvertPgError converts a raw PostgreSQL error into an *Error.
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

// ConvertSQLiteError converts a sqlite3 error into an *Error. sqlite does
// not expose table and column separately, so they are parsed from the
// message when the error is a constraint failure.
func ConvertSQLiteError(src sqlite3.Error) *Error {
	code := Other
	if src.ExtendedCode == sqlite3.ErrConstraintNotNull {
		code = NotNullViolation
	}

	sqlErr := &Error{
		Code:         code,
		Severity:     SeverityError,
		DatabaseCode: strconv.Itoa(int(src.ExtendedCode)),
		Message:      src.Error(),
		driverErr:    src,
	}

	if matches := sqliteConstraintPattern.FindStringSubmatch(src.Error()); len(matches) == 3 {
		sqlErr.TableName = matches[1]
		sqlErr.ColumnName = matches[2]
	}

	return sqlErr
}

// generateErrorCode creates application error codes in the form
// <DOMAIN>_<ACTION>, e.g. destinations + NotNullViolation => DESTINATION_REQUIRED.
func generateErrorCode(tableName string, errType Code) string {
	if tableName == "" {
		tableName = "RECORD"
	}

	domain := strings.ToUpper(tableName)
	if strings.HasSuffix(domain, "S") && len(domain) > 1 {
		domain = domain[:len(domain)-1]
	}

	action := "ERROR"
	if errType == NotNullViolation {
		action = "REQUIRED"
	}

	return fmt.Sprintf("%s_%s", domain, action)
}

// humanizeText converts snake_case into Title Case ("first_name" -> "First Name").
func humanizeText(text string) string {
	if text == "" {
		return ""
	}
	return cases.Title(language.English).String(strings.ReplaceAll(text, "_", " "))
}

// toHTTPError maps a normalized database error into an HTTPError. The
// destinations table only declares NOT NULL columns, so that is the one
// violation reported to clients; everything else is a 500.
func toHTTPError(sqlErr *Error) error {
	if sqlErr.Code != NotNullViolation {
		// Unknown database errors must not leak details to clients.
		return errs.NewInternalServerError()
	}

	fieldName := humanizeText(sqlErr.ColumnName)
	if fieldName == "" {
		fieldName = "field"
	}

	errorCode := generateErrorCode(sqlErr.TableName, sqlErr.Code)

	return errs.NewBadRequestError(fmt.Sprintf("The %s is required", fieldName), true, &errorCode, []errs.FieldError{
		{
			Field: strings.ToLower(sqlErr.ColumnName),
			Error: "is required",
		},
	})
}

// HandleError converts a low-level database error into an application-level error.
//
// Output:
//   - *errs.HTTPError: returned unchanged
//   - pgconn.PgError / sqlite3.Error: NOT NULL violations become 400s, the rest 500
//   - ErrNoRows: 404
//   - anything else: 500
func HandleError(err error) error {
	var httpErr *errs.HTTPError
	if errors.As(err, &httpErr) {
		return err
	}

	var pgerr *pgconn.PgError
	if errors.As(err, &pgerr) {
		return toHTTPError(ConvertPgError(pgerr))
	}

	var liteErr sqlite3.Error
	if errors.As(err, &liteErr) {
		return toHTTPError(ConvertSQLiteError(liteErr))
	}

	if errors.Is(err, pgx.ErrNoRows) || errors.Is(err, sql.ErrNoRows) {
		return errs.NewNotFoundError("Resource not found", false, nil)
	}

	return errs.NewInternalServerError()
}
