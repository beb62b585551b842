package books

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// バリデーションはストアに到達する前に弾かれるので DB なしで検証できる
func Test_Create_Validation(t *testing.T) {
	svc := &Service{}

	tests := []struct {
		name string
		req  CreateBooksRequest
	}{
		{name: "blank_title", req: CreateBooksRequest{Title: "  ", Author: "A", Price: 100, Count: 1}},
		{name: "blank_author", req: CreateBooksRequest{Title: "T", Author: "", Price: 100, Count: 1}},
		{name: "negative_price", req: CreateBooksRequest{Title: "T", Author: "A", Price: -1, Count: 1}},
		{name: "zero_count", req: CreateBooksRequest{Title: "T", Author: "A", Price: 100, Count: 0}},
		{name: "negative_count", req: CreateBooksRequest{Title: "T", Author: "A", Price: 100, Count: -3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), tt.req)
			require.Error(t, err)
			var api *APIError
			require.ErrorAs(t, err, &api)
			assert.Equal(t, CodeInvalidArgument, api.Code)
		})
	}
}

func Test_Get_RequiresID(t *testing.T) {
	svc := &Service{}
	_, err := svc.Get(context.Background(), "")
	var api *APIError
	require.ErrorAs(t, err, &api)
	assert.Equal(t, CodeInvalidArgument, api.Code)
}

func Test_List_RejectsUnknownStatus(t *testing.T) {
	svc := &Service{}
	_, err := svc.List(context.Background(), ListFilter{Status: Status("lost")})
	var api *APIError
	require.ErrorAs(t, err, &api)
	assert.Equal(t, CodeInvalidArgument, api.Code)
}

func Test_ErrorToHTTPStatus(t *testing.T) {
	assert.Equal(t, 400, toHTTPStatus(ErrInvalid("x")))
	assert.Equal(t, 404, toHTTPStatus(ErrNotFound("x")))
	assert.Equal(t, 409, toHTTPStatus(ErrInvalidState("x")))
	assert.Equal(t, 500, toHTTPStatus(ErrInternal("x")))
	assert.Equal(t, 500, toHTTPStatus(assert.AnError))
}
