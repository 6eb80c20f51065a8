package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"sprout_server/models"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/xid"
	"golang.org/x/crypto/bcrypt"
)

const (
	bcryptCost  = 12
	tokenTTL    = 24 * time.Hour
	tokenIssuer = "sprout-server"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email is already registered")
	ErrWeakPassword       = fmt.Errorf("password must be at least %d characters", models.MinPasswordLength)
	ErrInvalidEmail       = errors.New("a valid email address is required")
)

// AuthService handles email/password signup and sign-in, and issues the
// HS256 tokens the protected routes check.
type AuthService struct {
	Dynamo   *DynamoService
	Profiles *UserProfileService
	secret   []byte
}

// NewAuthService wires the auth service. The secret signs every session
// token, so a short one is refused outright.
func NewAuthService(dynamo *DynamoService, profiles *UserProfileService, secret string) (*AuthService, error) {
	if len(secret) < 16 {
		return nil, errors.New("JWT secret must be at least 16 characters")
	}
	return &AuthService{Dynamo: dynamo, Profiles: profiles, secret: []byte(secret)}, nil
}

// SignUp registers a new account: credential keyed by email, empty profile
// keyed by a fresh id, and a session token. A taken email fails the
// conditional write, not a read-then-write race.
func (as *AuthService) SignUp(ctx context.Context, emailID, password, name string) (*models.UserProfile, string, error) {
	emailID = normalizeEmail(emailID)
	if emailID == "" {
		return nil, "", ErrInvalidEmail
	}
	if len(password) < models.MinPasswordLength {
		return nil, "", ErrWeakPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now().UTC().Format(time.RFC3339)
	credential := models.Credential{
		EmailID:      emailID,
		UserID:       xid.New().String(),
		PasswordHash: string(hash),
		CreatedAt:    now,
	}

	created, err := as.Dynamo.PutItemIfAbsent(ctx, models.CredentialsTable, credential, "emailId")
	if err != nil {
		return nil, "", fmt.Errorf("failed to store credential: %w", err)
	}
	if !created {
		return nil, "", ErrEmailTaken
	}

	profile := models.UserProfile{
		UserID:    credential.UserID,
		EmailID:   emailID,
		Name:      strings.TrimSpace(name),
		CreatedAt: now,
	}
	if _, err := as.Profiles.AddUserProfile(ctx, profile); err != nil {
		// Roll back the credential so the email is not locked behind a
		// half-registered account; a retry can then start clean.
		key := map[string]types.AttributeValue{
			"emailId": &types.AttributeValueMemberS{Value: emailID},
		}
		if deleteErr := as.Dynamo.DeleteItem(ctx, models.CredentialsTable, key); deleteErr != nil {
			log.Printf("❌ Failed to roll back credential for %s: %v", emailID, deleteErr)
		}
		return nil, "", fmt.Errorf("failed to create profile: %w", err)
	}

	token, err := as.GenerateToken(credential.UserID)
	if err != nil {
		return nil, "", err
	}
	return &profile, token, nil
}

// SignIn verifies the password against the stored hash and returns the
// profile with a fresh token. Unknown email and wrong password surface the
// same error.
func (as *AuthService) SignIn(ctx context.Context, emailID, password string) (*models.UserProfile, string, error) {
	key := map[string]types.AttributeValue{
		"emailId": &types.AttributeValueMemberS{Value: normalizeEmail(emailID)},
	}

	item, err := as.Dynamo.GetItem(ctx, models.CredentialsTable, key)
	if err != nil {
		if errors.Is(err, ErrItemNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("failed to fetch credential: %w", err)
	}

	var credential models.Credential
	if err := attributevalue.UnmarshalMap(item, &credential); err != nil {
		return nil, "", fmt.Errorf("failed to unmarshal credential: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(credential.PasswordHash), []byte(password)) != nil {
		return nil, "", ErrInvalidCredentials
	}

	profile, err := as.Profiles.GetUserProfile(ctx, credential.UserID)
	if err != nil {
		return nil, "", fmt.Errorf("failed to fetch profile: %w", err)
	}

	token, err := as.GenerateToken(credential.UserID)
	if err != nil {
		return nil, "", err
	}
	return profile, token, nil
}

// GenerateToken signs a session token carrying the user id in "sub"
func (as *AuthService) GenerateToken(userID string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
		Issuer:    tokenIssuer,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(as.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// ValidateToken verifies signature, expiry and issuer, returning the user id.
// Pinning HS256 keeps algorithm-confusion tokens out.
func (as *AuthService) ValidateToken(tokenStr string) (string, error) {
	token, err := jwt.ParseWithClaims(
		tokenStr,
		&jwt.RegisteredClaims{},
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return as.secret, nil
		},
		jwt.WithValidMethods([]string{"HS256"}),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return "", fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid || claims.Subject == "" {
		return "", errors.New("invalid token claims")
	}
	return claims.Subject, nil
}

func normalizeEmail(emailID string) string {
	emailID = strings.ToLower(strings.TrimSpace(emailID))
	at := strings.Index(emailID, "@")
	if at < 1 || at == len(emailID)-1 {
		return ""
	}
	return emailID
}
