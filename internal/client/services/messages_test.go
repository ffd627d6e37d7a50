package services

import (
	"context"
	"testing"

	"campusfind/internal/client/models"
	"campusfind/internal/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendClaim_EmptyContent_NeverHitsNetwork(t *testing.T) {
	fake := &fakeClient{}
	svc := NewMessageService(fake)

	_, err := svc.SendClaim(context.Background(), 1, "   ")

	require.ErrorIs(t, err, common.ErrMissingMessage)
	assert.Zero(t, fake.SendMessageCalls)
}

func TestSendClaim_OmitsReceiver(t *testing.T) {
	fake := &fakeClient{SendMessageRet: "Secure message sent with Digital Signature"}
	svc := NewMessageService(fake)

	msg, err := svc.SendClaim(context.Background(), 3, "I think this is mine")
	require.NoError(t, err)

	assert.Contains(t, msg, "Digital Signature")
	assert.Equal(t, int64(3), fake.LastSendReq.ItemID)
	assert.Empty(t, fake.LastSendReq.ReceiverID, "claims are routed by the server, not the client")
}

func TestSendReply_EmptyContent_NeverHitsNetwork(t *testing.T) {
	fake := &fakeClient{}
	svc := NewMessageService(fake)

	_, err := svc.SendReply(context.Background(), "CB101", 3, "")

	require.ErrorIs(t, err, common.ErrMissingMessage)
	assert.Zero(t, fake.SendMessageCalls)
}

func TestSendReply_CarriesReceiver(t *testing.T) {
	fake := &fakeClient{SendMessageRet: "Secure message sent with Digital Signature"}
	svc := NewMessageService(fake)

	_, err := svc.SendReply(context.Background(), "CB101", 3, "Please describe the keychain")
	require.NoError(t, err)

	assert.Equal(t, "CB101", fake.LastSendReq.ReceiverID)
	assert.Equal(t, int64(3), fake.LastSendReq.ItemID)
	assert.Equal(t, "Please describe the keychain", fake.LastSendReq.Content)
}

func TestInbox_PassesThrough(t *testing.T) {
	fake := &fakeClient{ListMessagesRet: []models.Message{
		{ID: 1, SenderID: "FAC007", Content: "That is mine", IsAuthentic: true},
	}}
	svc := NewMessageService(fake)

	msgs, err := svc.Inbox(context.Background())
	require.NoError(t, err)

	require.Len(t, msgs, 1)
	assert.True(t, msgs[0].IsAuthentic)
}
