//go:build e2e

package pulso_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"testing"
	"time"

	"github.com/pulsohoreca/pulso/pkg/idx"
	"github.com/pulsohoreca/pulso/pkg/jwtx"
	"github.com/pulsohoreca/pulso/pkg/pulsosdk"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

/*
 * Common constants and helper functions for access service end-to-end tests.
 * This includes container setup, session minting and assertions.
 */

const testImageName = "pulso-access-test:latest"

// jwtSecret is shared between the container and the test's token signer,
// standing in for the hosted auth provider.
var jwtSecret = strings.Repeat("e2e-secret-", 4)

// TestMain builds the Docker image once before all tests and cleans it up
// after all tests complete.
func TestMain(m *testing.M) {
	fmt.Fprintf(os.Stdout, "Building access service Docker image...")

	if err := buildDockerImage(); err != nil {
		fmt.Fprintf(os.Stderr, "\nFailed to build Docker image: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stdout, " done\n")

	exitCode := m.Run()

	fmt.Fprintf(os.Stdout, "Cleaning up access service Docker image...")
	cleanupDockerImage()
	fmt.Fprintf(os.Stdout, " done\n")

	os.Exit(exitCode)
}

func buildDockerImage() error {
	ctx := context.Background()
	cmd := exec.CommandContext(ctx, "docker", "build",
		"-t", testImageName,
		"-f", "../../../cmd/pulso/Dockerfile",
		"../../../")
	cmd.Dir = "."
	cmd.Stdout = os.Stdout
	cmd.Stderr = nil

	return cmd.Run()
}

func cleanupDockerImage() {
	ctx := context.Background()
	cmd := exec.CommandContext(ctx, "docker", "rmi", "-f", testImageName)
	_ = cmd.Run() // image might not exist
}

func baseEnv() map[string]string {
	return map[string]string{
		"PULSO_JWT_SECRET":    jwtSecret,
		"PULSO_DATABASE_FILE": "/data/pulso.db",
		"ENV":                 "test",
		"LOG_LEVEL":           "info",
		"LOG_FORMAT":          "json",
	}
}

// setupContainer starts the service with relaxed rate limits and returns the
// base URL.
func setupContainer(t *testing.T) string {
	t.Helper()

	env := baseEnv()
	// Tests make many rapid requests which would otherwise hit the strict limits
	env["RATELIMIT_STRICT_REQUESTS"] = "1000"
	env["RATELIMIT_STRICT_WINDOW_SEC"] = "60"
	env["RATELIMIT_STRICT_BURST"] = "1000"
	return startContainer(t, env)
}

// setupContainerWithDefaultRateLimits is for tests that check limiting itself.
func setupContainerWithDefaultRateLimits(t *testing.T) string {
	t.Helper()
	return startContainer(t, baseEnv())
}

func startContainer(t *testing.T, env map[string]string) string {
	t.Helper()
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        testImageName,
		ExposedPorts: []string{"8080/tcp"},
		Env:          env,
		WaitingFor: wait.ForHTTP("/readyz").
			WithPort("8080/tcp").
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	mappedPort, err := container.MappedPort(ctx, "8080")
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)

	return fmt.Sprintf("http://%s:%s", host, mappedPort.Port())
}

// signIn mints a session token for a new user, as the auth provider would.
func signIn(t *testing.T, baseURL, email string) *pulsosdk.Client {
	t.Helper()

	signer, err := jwtx.NewHS256([]byte(jwtSecret), jwtx.VerifyOptions{})
	require.NoError(t, err)

	tok, err := signer.Sign(jwtx.NewSessionClaims(
		idx.New().String(), email, time.Hour, "", []string{jwtx.DefaultAudience}, time.Now(),
	))
	require.NoError(t, err)
	return pulsosdk.NewClient(baseURL, tok)
}

// onboard completes the wizard and returns the new company.
func onboard(t *testing.T, c *pulsosdk.Client, invitees ...pulsosdk.InviteeRequest) *pulsosdk.OnboardingResponse {
	t.Helper()

	resp, err := c.CompleteOnboarding(t.Context(), pulsosdk.OnboardingRequest{
		Nombre:      "La Terraza",
		TipoNegocio: "restaurante",
		Ciudad:      "Bogotá",
		PlanActivo:  "profesional",
		Invitations: invitees,
	})
	require.NoError(t, err, "onboarding should succeed")
	require.True(t, resp.Empresa.ConfiguracionInicialCompletada)
	return resp
}

func assertHealthy(t *testing.T, health *pulsosdk.HealthResponse, err error) {
	t.Helper()
	require.NoError(t, err)
	require.NotNil(t, health)
	require.Equal(t, "ok", health.Status)
}

// assertAPIError checks err is an API error with the given status and code.
func assertAPIError(t *testing.T, err error, status int, code string) {
	t.Helper()
	require.Error(t, err)

	var apiErr *pulsosdk.APIError
	require.True(t, errors.As(err, &apiErr), "expected an API error, got: %v", err)
	require.Equal(t, status, apiErr.StatusCode)
	require.Equal(t, code, apiErr.Code)
}
