package validation

import "testing"

func TestValidateFamilyName(t *testing.T) {
	tests := []struct {
		name       string
		familyName string
		wantErr    bool
	}{
		{name: "valid name", familyName: "The Smiths", wantErr: false},
		{name: "empty", familyName: "", wantErr: true},
		{name: "whitespace only", familyName: "   ", wantErr: true},
		{name: "too long", familyName: string(make([]byte, 121)), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateFamilyName(tt.familyName)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateFamilyName(%q) error = %v, wantErr %v", tt.familyName, err, tt.wantErr)
			}
		})
	}
}

func TestValidateContentType(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		wantErr     bool
	}{
		{name: "photo", contentType: "photo", wantErr: false},
		{name: "announcement", contentType: "announcement", wantErr: false},
		{name: "empty", contentType: "", wantErr: true},
		{name: "outside enumeration", contentType: "video", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateContentType(tt.contentType)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateContentType(%q) error = %v, wantErr %v", tt.contentType, err, tt.wantErr)
			}
		})
	}
}

func TestValidateMessageURL(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		wantErr bool
	}{
		{name: "empty is allowed", url: "", wantErr: false},
		{name: "absolute http", url: "http://example.com/photo.jpg", wantErr: false},
		{name: "absolute https", url: "https://cdn.example.com/a/b.png", wantErr: false},
		{name: "relative path", url: "/photo.jpg", wantErr: true},
		{name: "no scheme", url: "example.com/photo.jpg", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateMessageURL(tt.url)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateMessageURL(%q) error = %v, wantErr %v", tt.url, err, tt.wantErr)
			}
		})
	}
}

func TestValidateCommentText(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		wantErr bool
	}{
		{name: "valid text", text: "hey there", wantErr: false},
		{name: "empty", text: "", wantErr: true},
		{name: "whitespace only", text: " \t ", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCommentText(tt.text)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateCommentText(%q) error = %v, wantErr %v", tt.text, err, tt.wantErr)
			}
		})
	}
}

func TestValidationErrorMessage(t *testing.T) {
	err := ValidationError{Field: "contentType", Message: "contentType is required"}
	want := "contentType: contentType is required"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}
