package orders

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"podorder/layouts"
	"podorder/model"
)

func multipartUpload(t *testing.T, orderRef, filename, content string) *http.Request {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	if orderRef != "" {
		mw.WriteField("orderRef", orderRef)
	}
	if filename != "" {
		fw, err := mw.CreateFormFile("file", filename)
		if err != nil {
			t.Fatal(err)
		}
		fw.Write([]byte(content))
	}
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/orders/upload", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestUploadHandlerRequiresOrderRef(t *testing.T) {
	store := NewStore()
	store.Replace("OLD", []model.OrderLine{{LineNumber: "001"}})

	handler := UploadOrderHandler(store, testIndex())
	rec := httptest.NewRecorder()
	handler(rec, multipartUpload(t, "", "orders.csv", "9780000000001,3\n"))

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
	// The triggering action aborts with no state change.
	if store.Snapshot().OrderRef != "OLD" {
		t.Errorf("failed upload mutated the batch")
	}
}

func TestUploadHandlerParseFailureKeepsBatch(t *testing.T) {
	store := NewStore()
	store.Replace("OLD", []model.OrderLine{{LineNumber: "001"}})

	handler := UploadOrderHandler(store, testIndex())
	rec := httptest.NewRecorder()
	handler(rec, multipartUpload(t, "REF1", "orders.xlsx", "this is not a workbook"))

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
	if store.Snapshot().OrderRef != "OLD" || store.Len() != 1 {
		t.Errorf("parse failure cleared the previous batch")
	}
}

func TestUploadHandlerSuccess(t *testing.T) {
	store := NewStore()
	handler := UploadOrderHandler(store, testIndex())

	rec := httptest.NewRecorder()
	handler(rec, multipartUpload(t, "REF1", "orders.csv", "ISBN,Qty\n9780000000001,3\nabc,x\n"))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		BatchID string            `json:"batchId"`
		Count   int               `json:"count"`
		Lines   []model.OrderLine `json:"lines"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response: %v", err)
	}
	if resp.BatchID == "" || resp.Count != 2 {
		t.Errorf("response = %+v", resp)
	}
	if !resp.Lines[0].Available || resp.Lines[1].Available {
		t.Errorf("lines = %+v", resp.Lines)
	}
}

func TestDeleteLineHandlerOutOfRange(t *testing.T) {
	store := NewStore()
	store.Replace("REF1", []model.OrderLine{{LineNumber: "001"}})

	handler := DeleteLineHandler(store)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/orders/delete", strings.NewReader(`{"index": 5}`))
	handler(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
	if store.Len() != 1 {
		t.Errorf("out-of-range delete mutated the batch")
	}
}

func TestSelectCustomerHandlerUnknownType(t *testing.T) {
	store := NewStore()
	handler := SelectCustomerHandler(store, layouts.NewRegistry())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/orders/customer", strings.NewReader(`{"customerType":"nope"}`))
	handler(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
	if store.Snapshot().CustomerType != "" {
		t.Errorf("unknown customer type was stored")
	}
}
