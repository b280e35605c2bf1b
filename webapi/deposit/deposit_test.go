package deposit_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gibraltarbank/gibraltar/webapi/common"
	"github.com/gibraltarbank/gibraltar/webapi/testutils"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/suite"
)

type DepositTestSuite struct {
	testutils.APITestSuite
	token     string
	accountID string
}

func (s *DepositTestSuite) SetupTest() {
	s.APITestSuite.SetupTest()
	s.token = s.LoginClient(s.EnrollClient())

	resp := s.MakeRequest("GET", "/dashboard/accounts", "", s.token)
	defer resp.Body.Close() //nolint: errcheck
	var response common.Response
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&response))
	accounts := response.Data.(map[string]any)["accounts"].([]any)
	s.Require().NotEmpty(accounts)
	s.accountID = accounts[0].(map[string]any)["id"].(string)
}

// postDeposit submits a multipart deposit form; empty image names are
// omitted from the form entirely.
func (s *DepositTestSuite) postDeposit(
	amount string, images ...string,
) *http.Response {
	var buf bytes.Buffer
	form := multipart.NewWriter(&buf)
	s.Require().NoError(form.WriteField("account_id", s.accountID))
	s.Require().NoError(form.WriteField("amount", amount))
	for _, field := range images {
		part, err := form.CreateFormFile(field, field+".jpg")
		s.Require().NoError(err)
		_, err = part.Write([]byte("image-bytes"))
		s.Require().NoError(err)
	}
	s.Require().NoError(form.Close())

	req := httptest.NewRequest("POST", "/dashboard/deposits", &buf)
	req.Header.Set("Content-Type", form.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+s.token)
	resp, err := s.App.Test(req, 1000000)
	s.Require().NoError(err)
	return resp
}

func (s *DepositTestSuite) TestSubmit_Success() {
	resp := s.postDeposit("250.00", "front_image", "back_image")
	defer resp.Body.Close() //nolint: errcheck
	s.Equal(fiber.StatusCreated, resp.StatusCode)

	var response common.Response
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&response))
	deposit := response.Data.(map[string]any)
	s.Equal("Pending", deposit["status"])
	s.Equal(250.0, deposit["amount"])
}

func (s *DepositTestSuite) TestSubmit_MissingImages() {
	resp := s.postDeposit("250.00")
	defer resp.Body.Close() //nolint: errcheck
	s.Equal(fiber.StatusBadRequest, resp.StatusCode)

	var problem common.ProblemDetails
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&problem))
	errs := problem.Errors.(map[string]any)
	s.Equal("Front image of check is required.", errs["front_image"])
	s.Equal("Back image of check is required.", errs["back_image"])
}

func (s *DepositTestSuite) TestSubmit_BadAmount() {
	resp := s.postDeposit("-5", "front_image", "back_image")
	defer resp.Body.Close() //nolint: errcheck
	s.Equal(fiber.StatusBadRequest, resp.StatusCode)
}

func (s *DepositTestSuite) TestList() {
	resp := s.postDeposit("100.00", "front_image", "back_image")
	s.Require().Equal(fiber.StatusCreated, resp.StatusCode)
	resp.Body.Close() //nolint: errcheck

	resp = s.MakeRequest("GET", "/dashboard/deposits", "", s.token)
	defer resp.Body.Close() //nolint: errcheck
	s.Equal(fiber.StatusOK, resp.StatusCode)

	var response common.Response
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&response))
	deposits := response.Data.([]any)
	s.Len(deposits, 1)
}

func TestDepositTestSuite(t *testing.T) {
	suite.Run(t, new(DepositTestSuite))
}
