package admin_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/gibraltarbank/gibraltar/webapi/common"
	"github.com/gibraltarbank/gibraltar/webapi/testutils"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/suite"
)

type AdminTestSuite struct {
	testutils.APITestSuite
	client    *testutils.Client
	profileID string
	accountID string
}

func (s *AdminTestSuite) SetupTest() {
	s.APITestSuite.SetupTest()
	s.client = s.EnrollClient()
	s.profileID, s.accountID = s.lookupClient()
}

// lookupClient resolves the enrolled client's profile and first account
// through the utility itself.
func (s *AdminTestSuite) lookupClient() (profileID, accountID string) {
	resp := s.MakeRequest(
		"GET", "/admin/update-utility/profiles?q="+s.client.Email, "", "")
	s.Require().Equal(fiber.StatusOK, resp.StatusCode)
	profiles := s.decode(resp).([]any)
	s.Require().Len(profiles, 1)
	profileID = profiles[0].(map[string]any)["id"].(string)

	resp = s.MakeRequest(
		"GET", "/admin/update-utility/users/"+profileID, "", "")
	s.Require().Equal(fiber.StatusOK, resp.StatusCode)
	detail := s.decode(resp).(map[string]any)
	accounts := detail["accounts"].([]any)
	s.Require().NotEmpty(accounts)
	accountID = accounts[0].(map[string]any)["id"].(string)
	return profileID, accountID
}

func (s *AdminTestSuite) decode(resp *http.Response) any {
	defer resp.Body.Close() //nolint: errcheck
	var response common.Response
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&response))
	return response.Data
}

func (s *AdminTestSuite) TestSearch_NoTokenRequired() {
	resp := s.MakeRequest("GET", "/admin/update-utility/profiles", "", "")
	defer resp.Body.Close() //nolint: errcheck
	s.Equal(fiber.StatusOK, resp.StatusCode)
}

func (s *AdminTestSuite) TestSearch_NoMatch() {
	resp := s.MakeRequest(
		"GET", "/admin/update-utility/profiles?q=nobody@nowhere.test", "", "")
	s.Equal(fiber.StatusOK, resp.StatusCode)
	profiles, _ := s.decode(resp).([]any)
	s.Empty(profiles)
}

func (s *AdminTestSuite) TestUpdateProfile() {
	resp := s.MakeRequest(
		"PUT", "/admin/update-utility/profiles/"+s.profileID,
		`{"full_name":"Morgan Vance"}`, "")
	s.Equal(fiber.StatusOK, resp.StatusCode)
	profile := s.decode(resp).(map[string]any)
	s.Equal("Morgan Vance", profile["full_name"])
}

func (s *AdminTestSuite) TestUpdateProfile_BadEmail() {
	resp := s.MakeRequest(
		"PUT", "/admin/update-utility/profiles/"+s.profileID,
		`{"email":"not-an-email"}`, "")
	defer resp.Body.Close() //nolint: errcheck
	s.Equal(fiber.StatusBadRequest, resp.StatusCode)
}

func (s *AdminTestSuite) TestUpdateBalance() {
	resp := s.MakeRequest(
		"PUT", "/admin/update-utility/accounts/"+s.accountID+"/balance",
		`{"balance":1234.56}`, "")
	s.Equal(fiber.StatusOK, resp.StatusCode)
	acct := s.decode(resp).(map[string]any)
	s.Equal(1234.56, acct["balance"])
}

func (s *AdminTestSuite) TestUpdateBalance_Negative() {
	resp := s.MakeRequest(
		"PUT", "/admin/update-utility/accounts/"+s.accountID+"/balance",
		`{"balance":-10}`, "")
	defer resp.Body.Close() //nolint: errcheck
	s.Equal(fiber.StatusBadRequest, resp.StatusCode)
}

func (s *AdminTestSuite) TestCompleteTransfer_EndToEnd() {
	// Fund the account, submit a transfer as the client, then complete it.
	resp := s.MakeRequest(
		"PUT", "/admin/update-utility/accounts/"+s.accountID+"/balance",
		`{"balance":500}`, "")
	s.Require().Equal(fiber.StatusOK, resp.StatusCode)
	resp.Body.Close() //nolint: errcheck

	token := s.LoginClient(s.client)
	transferBody := fmt.Sprintf(
		`{"source_account_id":%q,"recipient_name":"Jane Doe","account_number":"12345678","routing_number":"021000021","amount":"100"}`,
		s.accountID,
	)
	resp = s.MakeRequest("POST", "/dashboard/transfers", transferBody, token)
	s.Require().Equal(fiber.StatusCreated, resp.StatusCode)
	resp.Body.Close() //nolint: errcheck

	resp = s.MakeRequest(
		"GET", "/admin/update-utility/users/"+s.profileID, "", "")
	detail := s.decode(resp).(map[string]any)
	pending := detail["pending_transactions"].([]any)
	s.Require().Len(pending, 1)
	txnID := pending[0].(map[string]any)["id"].(string)

	resp = s.MakeRequest(
		"PUT", "/admin/update-utility/transactions/"+txnID+"/status",
		`{"status":"Completed"}`, "")
	s.Equal(fiber.StatusOK, resp.StatusCode)
	txn := s.decode(resp).(map[string]any)
	s.Equal("Completed", txn["status"])
}

func (s *AdminTestSuite) TestUpdateStatus_Invalid() {
	resp := s.MakeRequest(
		"PUT", "/admin/update-utility/transactions/"+s.accountID+"/status",
		`{"status":"Bogus"}`, "")
	defer resp.Body.Close() //nolint: errcheck
	s.Equal(fiber.StatusBadRequest, resp.StatusCode)
}

func TestAdminTestSuite(t *testing.T) {
	suite.Run(t, new(AdminTestSuite))
}
