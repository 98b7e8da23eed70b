package adminsdk

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLogin(t *testing.T) {
	t.Parallel()

	t.Run("success decodes identity and credential", func(t *testing.T) {
		var gotBody LoginRequest
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, http.MethodPost, r.Method)
			require.Equal(t, "/auth/login", r.URL.Path)
			require.NotEmpty(t, r.Header.Get("X-Request-Id"))
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

			_ = json.NewEncoder(w).Encode(map[string]any{
				"success": true,
				"message": "Login successful",
				"result": map[string]string{
					"name":        "A",
					"email":       "a@b.com",
					"role":        "ADMIN",
					"accessToken": "tok123",
				},
			})
		}))
		defer srv.Close()

		client := NewSDKClient(srv.URL)
		resp, err := client.Login(context.Background(), LoginRequest{Email: "a@b.com", Password: "pw"})
		require.NoError(t, err)
		require.Equal(t, "a@b.com", gotBody.Email)
		require.Equal(t, LoginResult{Name: "A", Email: "a@b.com", Role: "ADMIN", AccessToken: "tok123"}, resp.Result)
	})

	t.Run("rejection surfaces backend message", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"success":false,"message":"Invalid credentials"}`))
		}))
		defer srv.Close()

		client := NewSDKClient(srv.URL)
		_, err := client.Login(context.Background(), LoginRequest{Email: "a@b.com", Password: "wrong"})
		require.Error(t, err)

		apiErr, ok := AsAPIError(err)
		require.True(t, ok)
		require.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
		require.Equal(t, "Invalid credentials", apiErr.Message)
		require.Equal(t, "Invalid credentials", ErrorMessage(err))
	})
}

func TestErrorParsing(t *testing.T) {
	t.Parallel()

	serve := func(status int, body string) error {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
			_, _ = w.Write([]byte(body))
		}))
		defer srv.Close()

		_, err := NewSDKClient(srv.URL).SendOTP(context.Background(), OTPRequest{Email: "a@b.com"})
		return err
	}

	t.Run("envelope with error code", func(t *testing.T) {
		err := serve(http.StatusBadRequest, `{"success":false,"message":"OTP expired","errorCode":"OTP_EXPIRED"}`)
		apiErr, ok := AsAPIError(err)
		require.True(t, ok)
		require.Equal(t, "OTP_EXPIRED", apiErr.Code)
		require.Equal(t, "OTP expired", apiErr.Message)
	})

	t.Run("alternative error field", func(t *testing.T) {
		err := serve(http.StatusBadGateway, `{"error":"upstream unavailable"}`)
		apiErr, ok := AsAPIError(err)
		require.True(t, ok)
		require.Equal(t, "upstream unavailable", apiErr.Message)
	})

	t.Run("plain text body degrades to status", func(t *testing.T) {
		err := serve(http.StatusInternalServerError, "boom")
		apiErr, ok := AsAPIError(err)
		require.True(t, ok)
		require.Equal(t, "HTTP 500: Internal Server Error", apiErr.Message)
	})

	t.Run("empty body degrades to status", func(t *testing.T) {
		err := serve(http.StatusNotFound, "")
		apiErr, ok := AsAPIError(err)
		require.True(t, ok)
		require.Equal(t, http.StatusNotFound, apiErr.StatusCode)
		require.NotEmpty(t, apiErr.Message)
	})
}

func TestAuthorizationHeader(t *testing.T) {
	t.Parallel()

	t.Run("token source credential on authenticated calls", func(t *testing.T) {
		var got string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got = r.Header.Get("Authorization")
			_, _ = w.Write([]byte(`{"success":true,"result":[]}`))
		}))
		defer srv.Close()

		client := NewSDKClient(srv.URL, WithTokenSource(func() string { return "tok123" }))
		_, err := client.SiteManagers(context.Background())
		require.NoError(t, err)
		require.Equal(t, "tok123", got)
	})

	t.Run("reset password overrides the credential", func(t *testing.T) {
		var got string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got = r.Header.Get("Authorization")
			require.Equal(t, http.MethodPatch, r.Method)
			require.Equal(t, "/auth/reset-password", r.URL.Path)
			_, _ = w.Write([]byte(`{"success":true,"message":"Password updated"}`))
		}))
		defer srv.Close()

		client := NewSDKClient(srv.URL, WithTokenSource(func() string { return "session-token" }))
		_, err := client.ResetPassword(context.Background(), "reset-token", ResetPasswordRequest{Password: "newpw"})
		require.NoError(t, err)
		require.Equal(t, "reset-token", got)
	})
}

func TestQueryCaching(t *testing.T) {
	t.Parallel()

	t.Run("repeat query served from cache", func(t *testing.T) {
		hits := 0
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			hits++
			_, _ = w.Write([]byte(`{"success":true,"result":[{"id":"p1","projectName":"Tower"}]}`))
		}))
		defer srv.Close()

		client := NewSDKClient(srv.URL)

		first, err := client.AllProjects(context.Background())
		require.NoError(t, err)
		second, err := client.AllProjects(context.Background())
		require.NoError(t, err)

		require.Equal(t, 1, hits)
		require.Equal(t, first.Result, second.Result)
	})

	t.Run("distinct parameters are distinct cache keys", func(t *testing.T) {
		hits := 0
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			hits++
			require.Equal(t, "/analysis/all-users", r.URL.Path)
			_, _ = w.Write([]byte(`{"success":true,"result":{"data":[],"meta":{"page":1,"limit":10,"total":0}}}`))
		}))
		defer srv.Close()

		client := NewSDKClient(srv.URL)
		ctx := context.Background()

		_, err := client.AllUsers(ctx, AllUsersParams{Role: RoleWorker, Page: 1, Limit: 10})
		require.NoError(t, err)
		_, err = client.AllUsers(ctx, AllUsersParams{Role: RoleSiteManager, Page: 1, Limit: 10})
		require.NoError(t, err)
		_, err = client.AllUsers(ctx, AllUsersParams{Role: RoleWorker, Page: 1, Limit: 10})
		require.NoError(t, err)

		require.Equal(t, 2, hits)
	})

	t.Run("query errors are not cached", func(t *testing.T) {
		hits := 0
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			hits++
			if hits == 1 {
				w.WriteHeader(http.StatusInternalServerError)
				_, _ = w.Write([]byte(`{"success":false,"message":"try again"}`))
				return
			}
			_, _ = w.Write([]byte(`{"success":true,"result":[]}`))
		}))
		defer srv.Close()

		client := NewSDKClient(srv.URL)

		_, err := client.AllProjects(context.Background())
		require.Error(t, err)
		_, err = client.AllProjects(context.Background())
		require.NoError(t, err)
		require.Equal(t, 2, hits)
	})
}

func TestMutationInvalidation(t *testing.T) {
	t.Parallel()

	t.Run("create project forces project refetch", func(t *testing.T) {
		listHits := 0
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.URL.Path {
			case "/project/all":
				listHits++
				_, _ = w.Write([]byte(`{"success":true,"result":[]}`))
			case "/project/create":
				_, _ = w.Write([]byte(`{"success":true,"message":"Project created successfully"}`))
			default:
				t.Fatalf("unexpected path %s", r.URL.Path)
			}
		}))
		defer srv.Close()

		client := NewSDKClient(srv.URL)
		ctx := context.Background()

		_, err := client.AllProjects(ctx)
		require.NoError(t, err)
		_, err = client.AllProjects(ctx)
		require.NoError(t, err)
		require.Equal(t, 1, listHits)

		_, err = client.CreateProject(ctx, CreateProjectRequest{ProjectName: "Tower", ManagerID: "m1"}, "", nil)
		require.NoError(t, err)

		_, err = client.AllProjects(ctx)
		require.NoError(t, err)
		require.Equal(t, 2, listHits, "post-mutation query must not be served from pre-mutation cache")
	})

	t.Run("failed mutation leaves cache intact", func(t *testing.T) {
		listHits := 0
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.URL.Path {
			case "/project/all":
				listHits++
				_, _ = w.Write([]byte(`{"success":true,"result":[]}`))
			case "/project/create":
				w.WriteHeader(http.StatusBadRequest)
				_, _ = w.Write([]byte(`{"success":false,"message":"manager not found"}`))
			default:
				t.Fatalf("unexpected path %s", r.URL.Path)
			}
		}))
		defer srv.Close()

		client := NewSDKClient(srv.URL)
		ctx := context.Background()

		_, err := client.AllProjects(ctx)
		require.NoError(t, err)

		_, err = client.CreateProject(ctx, CreateProjectRequest{}, "", nil)
		require.Error(t, err)

		_, err = client.AllProjects(ctx)
		require.NoError(t, err)
		require.Equal(t, 1, listHits)
	})

	t.Run("profile update invalidates users tag", func(t *testing.T) {
		profileHits := 0
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.URL.Path {
			case "/user/profile":
				profileHits++
				_, _ = w.Write([]byte(`{"success":true,"result":{"id":"u1","userName":"A"}}`))
			case "/auth/update":
				_, _ = w.Write([]byte(`{"success":true,"message":"Profile updated"}`))
			default:
				t.Fatalf("unexpected path %s", r.URL.Path)
			}
		}))
		defer srv.Close()

		client := NewSDKClient(srv.URL)
		ctx := context.Background()

		_, err := client.Profile(ctx)
		require.NoError(t, err)
		_, err = client.Profile(ctx)
		require.NoError(t, err)
		require.Equal(t, 1, profileHits)

		_, err = client.UpdateProfile(ctx, UpdateProfileRequest{UserName: "B"})
		require.NoError(t, err)

		_, err = client.Profile(ctx)
		require.NoError(t, err)
		require.Equal(t, 2, profileHits)
	})
}

func TestCreateProjectMultipart(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))

		var meta CreateProjectRequest
		require.NoError(t, json.Unmarshal([]byte(r.FormValue("bodyData")), &meta))
		require.Equal(t, "Tower", meta.ProjectName)
		require.Equal(t, 120.0, meta.PlumberFees)
		require.Equal(t, "m1", meta.ManagerID)

		file, header, err := r.FormFile("fileUrl")
		require.NoError(t, err)
		defer file.Close()
		require.Equal(t, "site.jpg", header.Filename)

		content, err := io.ReadAll(file)
		require.NoError(t, err)
		require.Equal(t, "fake-image-bytes", string(content))

		_, _ = w.Write([]byte(`{"success":true,"message":"Project created successfully","result":{"id":"p1"}}`))
	}))
	defer srv.Close()

	client := NewSDKClient(srv.URL)
	resp, err := client.CreateProject(context.Background(), CreateProjectRequest{
		ProjectName: "Tower",
		Address:     "1 Main St",
		Description: "High rise",
		PlumberFees: 120,
		ManagerID:   "m1",
	}, "site.jpg", strings.NewReader("fake-image-bytes"))
	require.NoError(t, err)
	require.Equal(t, "p1", resp.Result.ID)
}

func TestCreateProjectWithoutImage(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		require.NotEmpty(t, r.FormValue("bodyData"))

		_, _, err := r.FormFile("fileUrl")
		require.Error(t, err, "no attachment expected")

		_, _ = w.Write([]byte(`{"success":true,"message":"Project created successfully"}`))
	}))
	defer srv.Close()

	client := NewSDKClient(srv.URL)
	_, err := client.CreateProject(context.Background(), CreateProjectRequest{ProjectName: "Depot"}, "", nil)
	require.NoError(t, err)
}
