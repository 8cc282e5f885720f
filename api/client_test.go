package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestClient(t *testing.T, handler http.Handler, cfg Config) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg.BaseURL = srv.URL
	client, err := NewClient(cfg)
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	return client
}

func TestRegisterMarshalsExplicitNulls(t *testing.T) {
	var body map[string]any
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decode body: %v", err)
		}
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "ok"})
	})

	client := newTestClient(t, handler, Config{})
	_, err := client.Register(context.Background(), RegisterRequest{
		Email:     "a@b.co",
		Username:  "ada",
		Password:  "GoodPass1",
		FirstName: "Ada",
		LastName:  "Obi",
		Phone:     "+2348012345678",
		Role:      "buyer",
		UserType:  "individual",
		Address:   "1 Market Road",
		City:      "Ibadan",
		State:     "Oyo",
		Country:   "Nigeria",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	// Optional fields absent from the request still appear as explicit
	// nulls on the wire.
	for _, key := range []string{"farm_name", "farm_size", "farm_type", "years_farming", "business_name", "business_reg_number"} {
		v, present := body[key]
		if !present {
			t.Fatalf("key %s omitted", key)
		}
		if v != nil {
			t.Fatalf("key %s = %v, want null", key, v)
		}
	}
}

func TestBearerTokenFromSource(t *testing.T) {
	var auth string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "ok"})
	})

	client := newTestClient(t, handler, Config{
		TokenSource: func(ctx context.Context) (string, error) {
			return "tok-abc", nil
		},
	})

	if _, err := client.CheckResetToken(context.Background(), "reset"); err != nil {
		t.Fatalf("request: %v", err)
	}
	if auth != "Bearer tok-abc" {
		t.Fatalf("Authorization = %q", auth)
	}
}

func TestEmptyTokenSendsUnauthenticated(t *testing.T) {
	var auth string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "ok"})
	})

	client := newTestClient(t, handler, Config{
		TokenSource: func(ctx context.Context) (string, error) {
			return "", nil
		},
	})

	if _, err := client.CheckResetToken(context.Background(), "reset"); err != nil {
		t.Fatalf("request: %v", err)
	}
	if auth != "" {
		t.Fatalf("Authorization = %q", auth)
	}
}

func TestRequestIDHeader(t *testing.T) {
	var requestID string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-ID")
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "ok"})
	})

	client := newTestClient(t, handler, Config{})
	ctx := context.Background()

	if _, err := client.CheckResetToken(ctx, "reset"); err != nil {
		t.Fatalf("request: %v", err)
	}
	if requestID == "" {
		t.Fatal("no generated request ID")
	}

	if _, err := client.CheckResetToken(WithRequestID(ctx, "trace-42"), "reset"); err != nil {
		t.Fatalf("request: %v", err)
	}
	if requestID != "trace-42" {
		t.Fatalf("request ID = %q", requestID)
	}
}

func TestUnauthorizedHook(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]string{"detail": "Could not validate credentials"})
	})

	var evicted bool
	client := newTestClient(t, handler, Config{
		OnUnauthorized: func(ctx context.Context) { evicted = true },
	})

	_, err := client.MyOrders(context.Background())
	var remote *RemoteError
	if !errors.As(err, &remote) || remote.StatusCode != http.StatusUnauthorized {
		t.Fatalf("err = %v", err)
	}
	if !evicted {
		t.Fatal("unauthorized hook not called")
	}
}

func TestRemoteErrorDetail(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"detail": "Email already registered"})
	})

	client := newTestClient(t, handler, Config{})
	_, err := client.Register(context.Background(), RegisterRequest{})

	var remote *RemoteError
	if !errors.As(err, &remote) {
		t.Fatalf("err = %v", err)
	}
	if remote.Detail != "Email already registered" || remote.StatusCode != http.StatusBadRequest {
		t.Fatalf("remote = %+v", remote)
	}
}

func TestRemoteErrorStatusTextFallback(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "plain text panic page", http.StatusInternalServerError)
	})

	client := newTestClient(t, handler, Config{})
	_, err := client.MyOrders(context.Background())

	var remote *RemoteError
	if !errors.As(err, &remote) {
		t.Fatalf("err = %v", err)
	}
	if remote.Detail != "Internal Server Error" {
		t.Fatalf("detail = %q", remote.Detail)
	}
}

func TestNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	client, err := NewClient(Config{BaseURL: srv.URL})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	srv.Close()

	_, doErr := client.MyOrders(context.Background())
	if !errors.Is(doErr, ErrNetwork) {
		t.Fatalf("err = %v, want ErrNetwork", doErr)
	}
}

func TestUserAgentDefaultAndOverride(t *testing.T) {
	var ua string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ua = r.Header.Get("User-Agent")
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "ok"})
	})

	client := newTestClient(t, handler, Config{})
	if _, err := client.CheckResetToken(context.Background(), "reset"); err != nil {
		t.Fatalf("request: %v", err)
	}
	if ua != "farmconnect-onboard/1.0" {
		t.Fatalf("User-Agent = %q", ua)
	}

	custom := newTestClient(t, handler, Config{UserAgent: "wizard/2.0"})
	if _, err := custom.CheckResetToken(context.Background(), "reset"); err != nil {
		t.Fatalf("request: %v", err)
	}
	if ua != "wizard/2.0" {
		t.Fatalf("User-Agent = %q", ua)
	}
}

func TestGetProfile(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/api/auth/profile" {
			t.Errorf("request = %s %s", r.Method, r.URL.Path)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id": 7, "email": "ada@example.com", "role": "farmer",
			"farm_name": "Green Acres", "bio": "Cassava and maize.",
		})
	})

	client := newTestClient(t, handler, Config{})
	user, err := client.GetProfile(context.Background())
	if err != nil {
		t.Fatalf("get profile: %v", err)
	}
	if user.ID != 7 || user.FarmName == nil || *user.FarmName != "Green Acres" {
		t.Fatalf("user = %+v", user)
	}
	if user.Bio == nil || *user.Bio != "Cassava and maize." {
		t.Fatalf("bio = %v", user.Bio)
	}
}

func TestUpdateProfileSendsOnlySetFields(t *testing.T) {
	var body map[string]any
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut || r.URL.Path != "/api/auth/profile" {
			t.Errorf("request = %s %s", r.Method, r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decode body: %v", err)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"message":        "Profile updated successfully",
			"updated_fields": []string{"city"},
		})
	})

	client := newTestClient(t, handler, Config{})
	city := "Abeokuta"
	resp, err := client.UpdateProfile(context.Background(), ProfileUpdate{City: &city})
	if err != nil {
		t.Fatalf("update profile: %v", err)
	}
	if resp.Message != "Profile updated successfully" {
		t.Fatalf("message = %q", resp.Message)
	}
	if len(resp.UpdatedFields) != 1 || resp.UpdatedFields[0] != "city" {
		t.Fatalf("updated fields = %v", resp.UpdatedFields)
	}

	if body["city"] != "Abeokuta" {
		t.Fatalf("body city = %v", body["city"])
	}
	// Unset fields stay off the wire so the backend does not null them.
	for _, key := range []string{"first_name", "phone", "farm_name", "bio"} {
		if _, present := body[key]; present {
			t.Fatalf("unset field %s sent: %v", key, body[key])
		}
	}
}

func TestCheckResetTokenPosts(t *testing.T) {
	var method, path string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		method, path = r.Method, r.URL.Path
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "Token is valid"})
	})

	client := newTestClient(t, handler, Config{})
	if _, err := client.CheckResetToken(context.Background(), "reset-42"); err != nil {
		t.Fatalf("check token: %v", err)
	}
	if method != http.MethodPost || path != "/api/auth/check-reset-token/reset-42" {
		t.Fatalf("request = %s %s", method, path)
	}
}

func TestBaseURLRequired(t *testing.T) {
	if _, err := NewClient(Config{}); err == nil {
		t.Fatal("client built without base URL")
	}
}
