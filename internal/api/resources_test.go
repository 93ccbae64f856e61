package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"blogctl/cli/internal/notify"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(srv.URL, staticToken("abc"), nil, WithNotifier(&notify.Recorder{}))
}

func TestLoginSendsCredentials(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/auth/login/", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "jane@example.com", body["email"])
		require.Equal(t, "secret1", body["password"])

		w.Write([]byte(`{"id":42,"username":"jane","email":"jane@example.com","token":"abc"}`))
	})

	user, err := c.Login(context.Background(), "jane@example.com", "secret1")
	require.NoError(t, err)
	require.Equal(t, int64(42), user.ID)
	require.Equal(t, "jane", user.Username)
	require.Equal(t, "abc", user.Token)
}

func TestRegister(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/auth/register/", r.URL.Path)
		var body RegisterRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "jane", body.Username)

		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id":42,"username":"jane","email":"jane@example.com","token":"abc"}`))
	})

	user, err := c.Register(context.Background(), RegisterRequest{
		Username: "jane",
		Email:    "jane@example.com",
		Password: "secret1",
	})
	require.NoError(t, err)
	require.Equal(t, "abc", user.Token)
}

func TestListBlogsQuery(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/blogs/", r.URL.Path)
		require.Equal(t, "3", r.URL.Query().Get("page"))
		require.Equal(t, "9", r.URL.Query().Get("page_size"))
		w.Write([]byte(`{"count":23,"next":null,"previous":"p2","results":[{"id":19,"title":"Post 19","author":{"id":1,"username":"jane"}}]}`))
	})

	feed, err := c.ListBlogs(context.Background(), 3, 9)
	require.NoError(t, err)
	require.Equal(t, 23, feed.Count)
	require.Nil(t, feed.Next)
	require.NotNil(t, feed.Previous)
	require.Len(t, feed.Results, 1)
	require.Equal(t, "Post 19", feed.Results[0].Title)
}

func TestGetBlogDecodesEngagement(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/blogs/7/", r.URL.Path)
		w.Write([]byte(`{"id":7,"title":"Hello","likes_count":3,"is_liked":true,"is_wishlisted":false}`))
	})

	blog, err := c.GetBlog(context.Background(), 7)
	require.NoError(t, err)
	require.True(t, blog.IsLiked)
	require.False(t, blog.IsWishlisted)
	require.Equal(t, 3, blog.LikesCount)
}

func TestCreateBlogMultipart(t *testing.T) {
	dir := t.TempDir()
	imgPath := filepath.Join(dir, "cover.png")
	require.NoError(t, os.WriteFile(imgPath, []byte("pngdata"), 0o600))

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/blogs/", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))
		require.Equal(t, "A Worthy Title", r.FormValue("title"))
		require.Contains(t, r.FormValue("content"), "long enough")

		file, header, err := r.FormFile("image")
		require.NoError(t, err)
		defer file.Close()
		require.Equal(t, "cover.png", header.Filename)

		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id":8,"title":"A Worthy Title"}`))
	})

	blog, err := c.CreateBlog(context.Background(), BlogForm{
		Title:     "A Worthy Title",
		Content:   "some body text that is long enough for the server to accept it",
		ImagePath: imgPath,
	})
	require.NoError(t, err)
	require.Equal(t, int64(8), blog.ID)
}

func TestUpdateBlogOmitsMissingImage(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		require.Equal(t, "/blogs/8/", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))
		_, _, err := r.FormFile("image")
		require.Error(t, err) // no image part when no path was given
		w.Write([]byte(`{"id":8,"title":"Edited"}`))
	})

	blog, err := c.UpdateBlog(context.Background(), 8, BlogForm{
		Title:   "Edited",
		Content: "some body text that is long enough for the server to accept it",
	})
	require.NoError(t, err)
	require.Equal(t, "Edited", blog.Title)
}

func TestDeleteBlog(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		require.Equal(t, "/blogs/8/", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	})
	require.NoError(t, c.DeleteBlog(context.Background(), 8))
}

func TestCommentLifecyclePaths(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.Method + " " + r.URL.Path {
		case "GET /blogs/7/comments/":
			w.Write([]byte(`[{"id":1,"content":"nice","user":{"id":2,"username":"bob"}}]`))
		case "POST /blogs/7/comments/":
			var body map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			require.Equal(t, "great post", body["content"])
			w.WriteHeader(http.StatusCreated)
			w.Write([]byte(`{"id":2,"content":"great post"}`))
		case "PUT /comments/2/":
			w.Write([]byte(`{"id":2,"content":"edited"}`))
		case "DELETE /comments/2/":
			w.WriteHeader(http.StatusNoContent)
		default:
			t.Fatalf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
	})
	ctx := context.Background()

	comments, err := c.ListComments(ctx, 7)
	require.NoError(t, err)
	require.Len(t, comments, 1)
	require.Equal(t, "bob", comments[0].User.Username)

	created, err := c.CreateComment(ctx, 7, "great post")
	require.NoError(t, err)
	require.Equal(t, int64(2), created.ID)

	updated, err := c.UpdateComment(ctx, 2, "edited")
	require.NoError(t, err)
	require.Equal(t, "edited", updated.Content)

	require.NoError(t, c.DeleteComment(ctx, 2))
}

func TestToggleEndpoints(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/blogs/7/like/":
			require.Equal(t, http.MethodPost, r.Method)
			w.Write([]byte(`{"message":"Blog liked!"}`))
		case "/blogs/7/wishlist/":
			require.Equal(t, http.MethodPost, r.Method)
			w.Write([]byte(`{"message":"Added to wishlist!"}`))
		case "/wishlist/":
			w.Write([]byte(`[{"id":1,"blog":{"id":7,"title":"Hello"}}]`))
		case "/blogs/7/likes/":
			w.Write([]byte(`[{"id":1,"user":{"id":2,"username":"bob"}}]`))
		default:
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
	})
	ctx := context.Background()

	msg, err := c.ToggleLike(ctx, 7)
	require.NoError(t, err)
	require.Equal(t, "Blog liked!", msg)

	msg, err = c.ToggleWishlist(ctx, 7)
	require.NoError(t, err)
	require.Equal(t, "Added to wishlist!", msg)

	items, err := c.Wishlist(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Equal(t, "Hello", items[0].Blog.Title)

	likes, err := c.ListLikes(ctx, 7)
	require.NoError(t, err)
	require.Len(t, likes, 1)
}

func TestProfileUpdateMultipart(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		require.Equal(t, "/user/me/", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))
		require.Equal(t, "Jane S", r.FormValue("name"))
		require.Empty(t, r.FormValue("email")) // omitted, not blanked
		w.Write([]byte(`{"id":42,"username":"jane","email":"jane@example.com","name":"Jane S"}`))
	})

	user, err := c.UpdateProfile(context.Background(), ProfileForm{Name: "Jane S"})
	require.NoError(t, err)
	require.Equal(t, "Jane S", user.Name)
}
