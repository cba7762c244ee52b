package handlers

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"go.uber.org/zap/zaptest"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

func newTestAPI(t *testing.T) *API {
	return NewAPI(&mockProvinceController{}, &mockEmployeeController{}, &mockWorkCenterController{}, zaptest.NewLogger(t))
}

func TestServer_RegisterHTTPGateway(t *testing.T) {
	s := NewServer(50061, 8091, zaptest.NewLogger(t))
	err := s.RegisterHTTPGateway([]grpc.DialOption{grpc.WithTransportCredentials(insecure.NewCredentials())}, newTestAPI(t), "secret")
	if err != nil {
		t.Fatalf("RegisterHTTPGateway failed: %v", err)
	}
	defer s.conn.Close()

	if s.httpServer.Handler == nil {
		t.Error("expected httpServer.Handler to be set")
	}
	if s.httpServer.Addr != s.httpEndpoint {
		t.Errorf("expected httpServer.Addr %q, got %q", s.httpEndpoint, s.httpServer.Addr)
	}
}

func TestServer_StartStop(t *testing.T) {
	const grpcPort, httpPort = 50062, 8092
	s := NewServer(grpcPort, httpPort, zaptest.NewLogger(t))
	if err := s.RegisterHTTPGateway([]grpc.DialOption{grpc.WithTransportCredentials(insecure.NewCredentials())}, newTestAPI(t), ""); err != nil {
		t.Fatalf("RegisterHTTPGateway failed: %v", err)
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.Start()
	}()

	// Give the server a moment to start.
	time.Sleep(200 * time.Millisecond)

	conn, err := grpc.NewClient(
		fmt.Sprintf("localhost:%d", grpcPort),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		t.Fatalf("failed to create gRPC client: %v", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	resp, err := healthpb.NewHealthClient(conn).Check(ctx, &healthpb.HealthCheckRequest{Service: ServiceName})
	cancel()
	conn.Close()
	if err != nil {
		t.Fatalf("health check failed: %v", err)
	}
	if resp.GetStatus() != healthpb.HealthCheckResponse_SERVING {
		t.Errorf("expected SERVING, got %v", resp.GetStatus())
	}

	for _, path := range []string{"/healthz", "/metrics"} {
		res, err := http.Get(fmt.Sprintf("http://localhost:%d%s", httpPort, path))
		if err != nil {
			t.Fatalf("GET %s failed: %v", path, err)
		}
		_, _ = io.Copy(io.Discard, res.Body)
		res.Body.Close()
		if res.StatusCode != http.StatusOK {
			t.Errorf("GET %s: expected 200, got %d", path, res.StatusCode)
		}
	}

	s.Stop()

	select {
	case err := <-errCh:
		if err != nil {
			t.Fatalf("Server Start returned error: %v", err)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("timed out waiting for server to stop")
	}

	lis, err := net.Listen("tcp", s.grpcEndpoint)
	if err != nil {
		t.Errorf("expected to be able to listen on %q after shutdown, but got error: %v", s.grpcEndpoint, err)
	} else {
		lis.Close()
	}
}
