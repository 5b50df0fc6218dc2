//go:build integration

package integration

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/cucumber/godog"
)

// testContext holds state shared across step definitions within a scenario.
type testContext struct {
	baseURL      string
	client       *http.Client
	response     *http.Response
	responseBody []byte
	createdID    string
	err          error
}

// newTestContext targets BASE_URL when set; otherwise baseURL is filled in
// per scenario from an in-process stack.
func newTestContext() *testContext {
	return &testContext{
		baseURL: os.Getenv("BASE_URL"),
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// reset clears response state between scenarios.
func (tc *testContext) reset() {
	if tc.response != nil && tc.response.Body != nil {
		_ = tc.response.Body.Close()
	}

	tc.response = nil
	tc.responseBody = nil
	tc.createdID = ""
	tc.err = nil
}

// initializeScenario registers step definitions for each scenario.
func initializeScenario(t *testing.T, sc *godog.ScenarioContext) {
	tc := newTestContext()
	external := tc.baseURL != ""

	sc.Before(func(ctx context.Context, _ *godog.Scenario) (context.Context, error) {
		tc.reset()

		if !external {
			tc.baseURL = newStack(t, nil).server.URL
		}

		return ctx, nil
	})

	sc.After(func(ctx context.Context, _ *godog.Scenario, _ error) (context.Context, error) {
		tc.reset()
		return ctx, nil
	})

	sc.Step(`^the service is running$`, tc.theServiceIsRunning)
	sc.Step(`^I request GET "([^"]*)"$`, tc.iRequestGET)
	sc.Step(`^I send (POST|PUT|DELETE) "([^"]*)"$`, tc.iSend)
	sc.Step(`^I send (POST|PUT) "([^"]*)" with body:$`, tc.iSendWithBody)
	sc.Step(`^I create a quotation for (\d+) "([^"]*)"$`, tc.iCreateAQuotation)
	sc.Step(`^the response status should be (\d+)$`, tc.theResponseStatusShouldBe)
	sc.Step(`^the response should contain "([^"]*)"$`, tc.theResponseShouldContain)
	sc.Step(`^the JSON field "([^"]*)" should be "([^"]*)"$`, tc.theJSONFieldShouldBe)
	sc.Step(`^the response header "([^"]*)" should contain "([^"]*)"$`, tc.theResponseHeaderShouldContain)
	sc.Step(`^the list should contain the created quotation$`, tc.theListShouldContainTheCreatedQuotation)
}

// theServiceIsRunning verifies the service is reachable.
func (tc *testContext) theServiceIsRunning() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, tc.baseURL+"/-/live", http.NoBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := tc.client.Do(req)
	if err != nil {
		return fmt.Errorf("service is not running at %s: %w", tc.baseURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("service health check failed with status %d", resp.StatusCode)
	}

	return nil
}

// path substitutes {id} with the id of the quotation created in this scenario.
func (tc *testContext) path(p string) string {
	return strings.ReplaceAll(p, "{id}", tc.createdID)
}

func (tc *testContext) do(method, path, body string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var r io.Reader = http.NoBody
	if body != "" {
		r = strings.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, tc.baseURL+tc.path(path), r)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	if tc.response != nil {
		_ = tc.response.Body.Close()
	}

	tc.response, tc.err = tc.client.Do(req)
	if tc.err != nil {
		return fmt.Errorf("request failed: %w", tc.err)
	}

	tc.responseBody, tc.err = io.ReadAll(tc.response.Body)
	if tc.err != nil {
		return fmt.Errorf("failed to read response body: %w", tc.err)
	}

	return nil
}

// iRequestGET makes a GET request to the specified path.
func (tc *testContext) iRequestGET(path string) error {
	return tc.do(http.MethodGet, path, "")
}

func (tc *testContext) iSend(method, path string) error {
	return tc.do(method, path, "")
}

func (tc *testContext) iSendWithBody(method, path string, body *godog.DocString) error {
	return tc.do(method, path, body.Content)
}

// iCreateAQuotation posts a quotation at list price and remembers its id.
func (tc *testContext) iCreateAQuotation(quantity int, product string) error {
	body := fmt.Sprintf(`{"product":%q,"quantity":%d}`, product, quantity)
	if err := tc.do(http.MethodPost, "/api/v1/quotations", body); err != nil {
		return err
	}

	if tc.response.StatusCode != http.StatusCreated {
		return fmt.Errorf("create returned %d: %s", tc.response.StatusCode, tc.responseBody)
	}

	var created struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(tc.responseBody, &created); err != nil {
		return fmt.Errorf("decoding created quotation: %w", err)
	}

	tc.createdID = created.ID

	return nil
}

// theResponseStatusShouldBe asserts the response status code.
func (tc *testContext) theResponseStatusShouldBe(expectedCode int) error {
	if tc.response == nil {
		return fmt.Errorf("no response received")
	}

	if tc.response.StatusCode != expectedCode {
		return fmt.Errorf("expected status %d, got %d. Body: %s",
			expectedCode, tc.response.StatusCode, string(tc.responseBody))
	}

	return nil
}

// theResponseShouldContain asserts the response body contains the given text.
func (tc *testContext) theResponseShouldContain(text string) error {
	if tc.responseBody == nil {
		return fmt.Errorf("no response body")
	}

	if !strings.Contains(string(tc.responseBody), tc.path(text)) {
		return fmt.Errorf("response body does not contain %q.\nBody: %s", text, tc.responseBody)
	}

	return nil
}

// theJSONFieldShouldBe compares a dotted path into the JSON body, e.g.
// "error.details.quantity" or "deletedQuotation.total".
func (tc *testContext) theJSONFieldShouldBe(path, expected string) error {
	var doc any
	if err := json.Unmarshal(tc.responseBody, &doc); err != nil {
		return fmt.Errorf("response is not JSON: %w\nBody: %s", err, tc.responseBody)
	}

	cur := doc

	for _, part := range strings.Split(path, ".") {
		obj, ok := cur.(map[string]any)
		if !ok {
			return fmt.Errorf("%q: %v is not an object", path, cur)
		}

		if cur, ok = obj[part]; !ok {
			return fmt.Errorf("%q: field %q missing.\nBody: %s", path, part, tc.responseBody)
		}
	}

	if got := fmt.Sprint(cur); got != tc.path(expected) {
		return fmt.Errorf("%q: expected %q, got %q", path, expected, got)
	}

	return nil
}

func (tc *testContext) theResponseHeaderShouldContain(name, text string) error {
	if tc.response == nil {
		return fmt.Errorf("no response received")
	}

	if got := tc.response.Header.Get(name); !strings.Contains(got, text) {
		return fmt.Errorf("header %s = %q, want it to contain %q", name, got, text)
	}

	return nil
}

func (tc *testContext) theListShouldContainTheCreatedQuotation() error {
	if err := tc.iRequestGET("/api/v1/quotations"); err != nil {
		return err
	}

	var list []struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(tc.responseBody, &list); err != nil {
		return fmt.Errorf("decoding list: %w", err)
	}

	for _, q := range list {
		if q.ID == tc.createdID {
			return nil
		}
	}

	return fmt.Errorf("quotation %s not listed", tc.createdID)
}

// TestFeatures runs the GoDog BDD test suite.
func TestFeatures(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: func(sc *godog.ScenarioContext) {
			initializeScenario(t, sc)
		},
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"../features"},
			TestingT: t,
			Tags:     os.Getenv("GODOG_TAGS"),
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}
