package handler_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/InQaaaaGit/batchsum/internal/config"
	"github.com/InQaaaaGit/batchsum/internal/handler"
	"github.com/InQaaaaGit/batchsum/internal/models"
	"github.com/InQaaaaGit/batchsum/internal/service"
	"go.uber.org/zap"
)

// ExampleHandler_HandleProcessBatch демонстрирует пакетное суммирование.
func ExampleHandler_HandleProcessBatch() {
	logger := zap.NewNop()
	cfg := &config.Config{MaxWorkers: 2, MaxBodyBytes: 1 << 20}
	svc := service.NewBatchService(cfg, logger)
	h := handler.NewHandler(svc, cfg, logger)

	body := strings.NewReader(`{"batchid": "b1", "payload": [[1, 2, 3], [10, -10], []]}`)
	req := httptest.NewRequest(http.MethodPost, "/process_batch", body)
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()

	h.HandleProcessBatch(rr, req)

	var resp models.BatchResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(rr.Code, resp.BatchID, resp.Response, resp.Status)

	// Output:
	// 200 b1 [6 0 0] complete
}

// ExampleHandler_HandleAddNumbers демонстрирует суммирование одного списка.
func ExampleHandler_HandleAddNumbers() {
	logger := zap.NewNop()
	cfg := &config.Config{}
	h := handler.NewHandler(service.NewBatchService(cfg, logger), cfg, logger)

	req := httptest.NewRequest(http.MethodPost, "/add_numbers", strings.NewReader(`[9223372036854775807, 4, 5, 6]`))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()

	h.HandleAddNumbers(rr, req)

	fmt.Println(rr.Code, strings.TrimSpace(rr.Body.String()))

	// Output:
	// 200 [9223372036854775822]
}
