package validators

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	pkgerrors "github.com/shiprakart/seller-backend/pkg/errors"
)

type loginPayload struct {
	Phone string `json:"phone" validate:"required"`
	OTP   string `json:"otp" validate:"required,len=6"`
}

type gstPayload struct {
	GSTNumber string `json:"gst_number" validate:"omitempty,gstin"`
	PANNumber string `json:"pan_number" validate:"required,pan"`
}

func TestDecodeJSONBodyValid(t *testing.T) {
	r := httptest.NewRequest("POST", "/", strings.NewReader(`{"phone":"9876543210","otp":"123456"}`))

	var dest loginPayload
	require.NoError(t, DecodeJSONBody(r, &dest))
	require.Equal(t, "9876543210", dest.Phone)
}

func TestDecodeJSONBodyRejectsUnknownFields(t *testing.T) {
	r := httptest.NewRequest("POST", "/", strings.NewReader(`{"phone":"9876543210","otp":"123456","bogus":1}`))

	var dest loginPayload
	err := DecodeJSONBody(r, &dest)
	require.Error(t, err)
	require.True(t, pkgerrors.IsCode(err, pkgerrors.CodeValidation))
}

func TestDecodeJSONBodyReportsFieldDetails(t *testing.T) {
	r := httptest.NewRequest("POST", "/", strings.NewReader(`{"phone":"9876543210","otp":"12"}`))

	var dest loginPayload
	err := DecodeJSONBody(r, &dest)
	require.Error(t, err)

	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	details, ok := typed.Details().(map[string]string)
	require.True(t, ok)
	require.Contains(t, details, "otp")
}

func TestPANAndGSTINTags(t *testing.T) {
	valid := gstPayload{GSTNumber: "27ABCDE1234F1Z5", PANNumber: "ABCDE1234F"}
	require.NoError(t, ValidateStruct(&valid))

	badPAN := gstPayload{PANNumber: "abc123"}
	err := ValidateStruct(&badPAN)
	require.True(t, pkgerrors.IsCode(err, pkgerrors.CodeValidation))

	badGSTIN := gstPayload{GSTNumber: "NOTAGSTIN", PANNumber: "ABCDE1234F"}
	err = ValidateStruct(&badGSTIN)
	require.True(t, pkgerrors.IsCode(err, pkgerrors.CodeValidation))
}
