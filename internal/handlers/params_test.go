package handlers

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func testContext(path string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", path, nil)
	return c
}

func TestParseUintParam(t *testing.T) {
	c := testContext("/requests/12")
	c.Params = gin.Params{{Key: "id", Value: "12"}}

	id, ok := parseUintParam(c, "id")
	if !ok || id != 12 {
		t.Fatalf("got (%d, %v), want (12, true)", id, ok)
	}

	for _, bad := range []string{"0", "-3", "abc", ""} {
		c.Params = gin.Params{{Key: "id", Value: bad}}
		if _, ok := parseUintParam(c, "id"); ok {
			t.Errorf("%q should not parse", bad)
		}
	}
}

func TestParseUintQuery(t *testing.T) {
	c := testContext("/requests?parent_id=7")
	v, ok := parseUintQuery(c, "parent_id")
	if !ok || v != 7 {
		t.Fatalf("got (%d, %v), want (7, true)", v, ok)
	}

	// Absent means unfiltered.
	c = testContext("/requests")
	v, ok = parseUintQuery(c, "parent_id")
	if !ok || v != 0 {
		t.Fatalf("absent param: got (%d, %v), want (0, true)", v, ok)
	}

	c = testContext("/requests?parent_id=xyz")
	if _, ok := parseUintQuery(c, "parent_id"); ok {
		t.Error("junk should not parse")
	}
}
