package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/cucumber/godog"
)

// registerAPISteps registers HTTP request steps.
func registerAPISteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^the API server is running$`, theAPIServerIsRunning)
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)"$`, iSendARequestTo)
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, iSendARequestToWithBody)
	ctx.Step(`^I store the response field "([^"]*)" as "([^"]*)"$`, iStoreTheResponseFieldAs)
}

// registerResponseSteps registers response validation steps.
func registerResponseSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^the response status should be (\d+)$`, theResponseStatusShouldBe)
	ctx.Step(`^the response field "([^"]*)" should be "([^"]*)"$`, theResponseFieldShouldBe)
	ctx.Step(`^the response field "([^"]*)" should exist$`, theResponseFieldShouldExist)
	ctx.Step(`^the response field "([^"]*)" should have (\d+) items$`, theResponseFieldShouldHaveItems)
}

// registerClockSteps registers time manipulation steps.
func registerClockSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^(\d+) days pass$`, daysPass)
}

func theAPIServerIsRunning(ctx context.Context) error {
	tc := GetTestContext(ctx)
	if tc == nil || tc.server == nil {
		return fmt.Errorf("test server is not running")
	}
	return nil
}

// expand replaces {name} placeholders with values stored from earlier
// responses.
func (tc *TestContext) expand(s string) string {
	for name, value := range tc.vars {
		s = strings.ReplaceAll(s, "{"+name+"}", value)
	}
	return s
}

func (tc *TestContext) doRequest(method, path string, body []byte) error {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequest(method, tc.server.URL+tc.expand(path), reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := tc.client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	tc.response = resp
	tc.responseBody, err = io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}
	return nil
}

func iSendARequestTo(ctx context.Context, method, path string) error {
	tc := GetTestContext(ctx)
	return tc.doRequest(method, path, nil)
}

func iSendARequestToWithBody(ctx context.Context, method, path string, body *godog.DocString) error {
	tc := GetTestContext(ctx)
	return tc.doRequest(method, path, []byte(tc.expand(body.Content)))
}

func iStoreTheResponseFieldAs(ctx context.Context, field, name string) error {
	tc := GetTestContext(ctx)
	value, err := tc.lookupField(field)
	if err != nil {
		return err
	}
	tc.vars[name] = fmt.Sprintf("%v", value)
	return nil
}

func theResponseStatusShouldBe(ctx context.Context, status int) error {
	tc := GetTestContext(ctx)
	if tc.response == nil {
		return fmt.Errorf("no response recorded")
	}
	if tc.response.StatusCode != status {
		return fmt.Errorf("status = %d, want %d; body: %s", tc.response.StatusCode, status, tc.responseBody)
	}
	return nil
}

// lookupField resolves a dot-separated path in the JSON response body.
// Numeric segments index into arrays.
func (tc *TestContext) lookupField(path string) (interface{}, error) {
	var doc interface{}
	if err := json.Unmarshal(tc.responseBody, &doc); err != nil {
		return nil, fmt.Errorf("response is not JSON: %w; body: %s", err, tc.responseBody)
	}

	current := doc
	for _, segment := range strings.Split(path, ".") {
		switch node := current.(type) {
		case map[string]interface{}:
			value, ok := node[segment]
			if !ok {
				return nil, fmt.Errorf("field %q not found in response: %s", path, tc.responseBody)
			}
			current = value
		case []interface{}:
			index, err := strconv.Atoi(segment)
			if err != nil || index < 0 || index >= len(node) {
				return nil, fmt.Errorf("invalid array index %q in path %q", segment, path)
			}
			current = node[index]
		default:
			return nil, fmt.Errorf("field %q not found in response: %s", path, tc.responseBody)
		}
	}
	return current, nil
}

func theResponseFieldShouldBe(ctx context.Context, field, expected string) error {
	tc := GetTestContext(ctx)
	value, err := tc.lookupField(field)
	if err != nil {
		return err
	}

	expected = tc.expand(expected)
	actual := fmt.Sprintf("%v", value)

	// JSON numbers decode as float64; compare numerically when both sides parse.
	if ev, eerr := strconv.ParseFloat(expected, 64); eerr == nil {
		if av, aerr := strconv.ParseFloat(actual, 64); aerr == nil {
			if ev == av {
				return nil
			}
			return fmt.Errorf("field %q = %s, want %s", field, actual, expected)
		}
	}

	if actual != expected {
		return fmt.Errorf("field %q = %q, want %q", field, actual, expected)
	}
	return nil
}

func theResponseFieldShouldExist(ctx context.Context, field string) error {
	tc := GetTestContext(ctx)
	_, err := tc.lookupField(field)
	return err
}

func theResponseFieldShouldHaveItems(ctx context.Context, field string, count int) error {
	tc := GetTestContext(ctx)
	value, err := tc.lookupField(field)
	if err != nil {
		return err
	}
	items, ok := value.([]interface{})
	if !ok {
		return fmt.Errorf("field %q is not an array", field)
	}
	if len(items) != count {
		return fmt.Errorf("field %q has %d items, want %d", field, len(items), count)
	}
	return nil
}

func daysPass(ctx context.Context, days int) error {
	tc := GetTestContext(ctx)
	tc.clock.Advance(time.Duration(days) * 24 * time.Hour)
	return nil
}
