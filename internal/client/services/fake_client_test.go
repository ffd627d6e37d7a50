package services

import (
	"context"

	"campusfind/internal/client/api"
	"campusfind/internal/client/models"
)

// fakeClient implements api.Client for service unit tests. It records call
// counts and last arguments so tests can assert that validation failures
// never reach the network.
type fakeClient struct {
	RegisterCalls   int
	RegisterRet     string
	RegisterErr     error
	LastRegisterReq api.RegisterRequest

	LoginCalls   int
	LoginRet     *api.LoginResult
	LoginErr     error
	LastLoginUsr string
	LastLoginPwd string

	VerifyMFACalls int
	VerifyMFARet   models.User
	VerifyMFAErr   error
	LastMFAUser    string
	LastMFACode    string

	ForgotCalls int
	ForgotRet   *api.RecoveryResult
	ForgotErr   error

	ListItemsCalls int
	ListItemsRet   []models.Item
	ListItemsErr   error

	CreateItemCalls int
	CreateItemRet   string
	CreateItemErr   error
	LastCreateReq   api.CreateItemRequest

	UpdateStatusCalls int
	UpdateStatusRet   string
	UpdateStatusErr   error
	LastUpdateID      int64
	LastUpdateStatus  models.ItemStatus

	DeleteItemCalls int
	DeleteItemRet   string
	DeleteItemErr   error
	LastDeleteID    int64

	ListMessagesCalls int
	ListMessagesRet   []models.Message
	ListMessagesErr   error

	SendMessageCalls int
	SendMessageRet   string
	SendMessageErr   error
	LastSendReq      api.SendMessageRequest

	ACMCalls int
	ACMRet   models.ACM
	ACMErr   error

	Identity string
}

var _ api.Client = (*fakeClient)(nil)

func (f *fakeClient) Register(ctx context.Context, req api.RegisterRequest) (string, error) {
	f.RegisterCalls++
	f.LastRegisterReq = req
	return f.RegisterRet, f.RegisterErr
}

func (f *fakeClient) Login(ctx context.Context, username, password string) (*api.LoginResult, error) {
	f.LoginCalls++
	f.LastLoginUsr = username
	f.LastLoginPwd = password
	return f.LoginRet, f.LoginErr
}

func (f *fakeClient) VerifyMFA(ctx context.Context, username, code string) (models.User, error) {
	f.VerifyMFACalls++
	f.LastMFAUser = username
	f.LastMFACode = code
	return f.VerifyMFARet, f.VerifyMFAErr
}

func (f *fakeClient) ForgotPassword(ctx context.Context, email string) (*api.RecoveryResult, error) {
	f.ForgotCalls++
	return f.ForgotRet, f.ForgotErr
}

func (f *fakeClient) ListItems(ctx context.Context) ([]models.Item, error) {
	f.ListItemsCalls++
	return f.ListItemsRet, f.ListItemsErr
}

func (f *fakeClient) CreateItem(ctx context.Context, req api.CreateItemRequest) (string, error) {
	f.CreateItemCalls++
	f.LastCreateReq = req
	return f.CreateItemRet, f.CreateItemErr
}

func (f *fakeClient) UpdateItemStatus(ctx context.Context, id int64, status models.ItemStatus) (string, error) {
	f.UpdateStatusCalls++
	f.LastUpdateID = id
	f.LastUpdateStatus = status
	return f.UpdateStatusRet, f.UpdateStatusErr
}

func (f *fakeClient) DeleteItem(ctx context.Context, id int64) (string, error) {
	f.DeleteItemCalls++
	f.LastDeleteID = id
	return f.DeleteItemRet, f.DeleteItemErr
}

func (f *fakeClient) ListMessages(ctx context.Context) ([]models.Message, error) {
	f.ListMessagesCalls++
	return f.ListMessagesRet, f.ListMessagesErr
}

func (f *fakeClient) SendMessage(ctx context.Context, req api.SendMessageRequest) (string, error) {
	f.SendMessageCalls++
	f.LastSendReq = req
	return f.SendMessageRet, f.SendMessageErr
}

func (f *fakeClient) ACM(ctx context.Context) (models.ACM, error) {
	f.ACMCalls++
	return f.ACMRet, f.ACMErr
}

func (f *fakeClient) SetIdentity(username string) {
	f.Identity = username
}
