package support_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gibraltarbank/gibraltar/webapi/common"
	"github.com/gibraltarbank/gibraltar/webapi/testutils"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/suite"
)

type SupportTestSuite struct {
	testutils.APITestSuite
	token string
}

func (s *SupportTestSuite) SetupTest() {
	s.APITestSuite.SetupTest()
	s.token = s.LoginClient(s.EnrollClient())
}

func (s *SupportTestSuite) decode(resp *http.Response) any {
	defer resp.Body.Close() //nolint: errcheck
	var response common.Response
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&response))
	return response.Data
}

func (s *SupportTestSuite) startChat() string {
	resp := s.MakeRequest("POST", "/support/chats", "", s.token)
	s.Require().Equal(fiber.StatusCreated, resp.StatusCode)
	chat := s.decode(resp).(map[string]any)
	return chat["id"].(string)
}

func (s *SupportTestSuite) TestQuickAssistance_ListsTopics() {
	resp := s.MakeRequest("GET", "/support/quick-assistance", "", s.token)
	s.Equal(fiber.StatusOK, resp.StatusCode)

	topics := s.decode(resp).([]any)
	s.Len(topics, 7)
	first := topics[0].(map[string]any)
	s.Equal("qa-1", first["id"])
	s.Equal("Pending Mobile Deposit", first["subject"])
}

func (s *SupportTestSuite) TestStartChat_SeedsWelcome() {
	resp := s.MakeRequest("POST", "/support/chats", "", s.token)
	s.Equal(fiber.StatusCreated, resp.StatusCode)

	chat := s.decode(resp).(map[string]any)
	messages := chat["messages"].([]any)
	s.Require().Len(messages, 1)
	body := messages[0].(map[string]any)["body"].(string)
	s.Contains(body, "Hello! I'm Sarah from Gibraltar Support.")
}

func (s *SupportTestSuite) TestSend_Topic() {
	chatID := s.startChat()
	resp := s.MakeRequest(
		"POST", "/support/chats/"+chatID+"/messages",
		`{"topic_id":"qa-2"}`, s.token)
	s.Equal(fiber.StatusOK, resp.StatusCode)

	chat := s.decode(resp).(map[string]any)
	messages := chat["messages"].([]any)
	s.Require().Len(messages, 3)
	reply := messages[2].(map[string]any)
	s.Equal("Re: Wire Transfer Timing", reply["subject"])
}

func (s *SupportTestSuite) TestSend_FreeText() {
	chatID := s.startChat()
	resp := s.MakeRequest(
		"POST", "/support/chats/"+chatID+"/messages",
		`{"body":"I need help with my card"}`, s.token)
	s.Equal(fiber.StatusOK, resp.StatusCode)

	chat := s.decode(resp).(map[string]any)
	messages := chat["messages"].([]any)
	s.Require().Len(messages, 3)
	reply := messages[2].(map[string]any)["body"].(string)
	s.Contains(reply, "your support ticket is #")
}

func (s *SupportTestSuite) TestSend_ForeignChat() {
	chatID := s.startChat()
	other := s.LoginClient(s.EnrollClient())
	resp := s.MakeRequest(
		"POST", "/support/chats/"+chatID+"/messages",
		`{"body":"hello"}`, other)
	defer resp.Body.Close() //nolint: errcheck
	s.Equal(fiber.StatusNotFound, resp.StatusCode)
}

func (s *SupportTestSuite) TestReset() {
	chatID := s.startChat()
	resp := s.MakeRequest("DELETE", "/support/chats/"+chatID, "", s.token)
	defer resp.Body.Close() //nolint: errcheck
	s.Equal(fiber.StatusOK, resp.StatusCode)

	resp = s.MakeRequest(
		"GET", "/support/chats/"+chatID+"/messages", "", s.token)
	defer resp.Body.Close() //nolint: errcheck
	s.Equal(fiber.StatusNotFound, resp.StatusCode)
}

func (s *SupportTestSuite) TestMalformedChatID() {
	resp := s.MakeRequest(
		"GET", "/support/chats/not-a-uuid/messages", "", s.token)
	defer resp.Body.Close() //nolint: errcheck
	s.Equal(fiber.StatusBadRequest, resp.StatusCode)
}

func TestSupportTestSuite(t *testing.T) {
	suite.Run(t, new(SupportTestSuite))
}
