package grpc

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"

	"github.com/dmitrijs2005/animalcatalog/internal/logging"
)

type recordingLogger struct {
	msgs chan string
}

func (l *recordingLogger) Debug(_ context.Context, msg string, _ ...any) { l.push(msg) }
func (l *recordingLogger) Info(_ context.Context, msg string, _ ...any)  { l.push(msg) }
func (l *recordingLogger) Warn(_ context.Context, msg string, _ ...any)  { l.push(msg) }
func (l *recordingLogger) Error(_ context.Context, msg string, _ ...any) { l.push(msg) }
func (l *recordingLogger) With(...any) logging.Logger                    { return l }

func (l *recordingLogger) push(msg string) {
	select {
	case l.msgs <- msg:
	default:
	}
}

func startServer(t *testing.T, l logging.Logger) (healthpb.HealthClient, context.CancelFunc, chan error) {
	t.Helper()

	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	srv := NewHealthServer(lis.Addr().String(), l)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Serve(ctx, lis) }()

	conn, err := grpc.NewClient(lis.Addr().String(), grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return healthpb.NewHealthClient(conn), cancel, done
}

func TestHealth_Serving(t *testing.T) {
	client, cancel, done := startServer(t, logging.Nop())
	defer cancel()

	ctx, stop := context.WithTimeout(context.Background(), 2*time.Second)
	defer stop()

	resp, err := client.Check(ctx, &healthpb.HealthCheckRequest{})
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, resp.GetStatus())

	resp, err = client.Check(ctx, &healthpb.HealthCheckRequest{Service: ServiceName})
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, resp.GetStatus())

	_, err = client.Check(ctx, &healthpb.HealthCheckRequest{Service: "unknown"})
	assert.Equal(t, codes.NotFound, status.Code(err))

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("server did not stop within timeout after context cancel")
	}
}

func TestHealth_InterceptorLogs(t *testing.T) {
	l := &recordingLogger{msgs: make(chan string, 16)}
	client, cancel, _ := startServer(t, l)
	defer cancel()

	ctx, stop := context.WithTimeout(context.Background(), 2*time.Second)
	defer stop()
	_, err := client.Check(ctx, &healthpb.HealthCheckRequest{})
	require.NoError(t, err)

	deadline := time.After(time.Second)
	for {
		select {
		case msg := <-l.msgs:
			if msg == "grpc call" {
				return
			}
		case <-deadline:
			t.Fatal("grpc call was not logged")
		}
	}
}

func TestRun_ReturnsErrorOnBadAddress(t *testing.T) {
	t.Parallel()

	err := NewHealthServer("127.0.0.1:99999", logging.Nop()).Run(context.Background())
	assert.Error(t, err)
}
