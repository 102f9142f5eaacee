package annotation_test

import (
	"strings"
	"testing"

	"anno-schema/internal/annotation"
)

const sampleJava = `
import javax.persistence.*;
import java.time.LocalDateTime;

public class Account {
    /**
     * @pk
     */
    @Id
    private Integer id;

    /**
     * @unique
     * @notNull
     */
    @Column(unique = true, nullable = false)
    private String handle;

    private LocalDateTime createdAt;
}

public class Article {
    /**
     * @pk
     */
    @Id
    private Integer id;

    /**
     * @notNull
     * @ref Account.id many-to-one
     */
    @ManyToOne
    private Integer accountId;

    /**
     * @default draft
     */
    private String status; // draft, published, archived
}
`

func TestParseJava_Sample(t *testing.T) {
	classes, err := annotation.ParseJava("sample.java", strings.NewReader(sampleJava))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if len(classes) != 2 {
		t.Fatalf("Expected 2 classes, got %d", len(classes))
	}

	account := classes[0]
	if account.Name != "Account" {
		t.Errorf("Expected Account, got %s", account.Name)
	}
	if len(account.Fields) != 3 {
		t.Fatalf("Expected 3 fields on Account, got %d", len(account.Fields))
	}
	if !account.Fields[0].Anno.PK {
		t.Error("Account.id should carry @pk")
	}
	if account.Fields[0].Type != "int" {
		t.Errorf("Integer should map to int, got %s", account.Fields[0].Type)
	}

	handle := account.Fields[1]
	if !handle.Anno.Unique || !handle.Anno.NotNull {
		t.Error("Account.handle should be @unique @notNull")
	}

	created := account.Fields[2]
	if created.Name != "created_at" {
		t.Errorf("createdAt should normalize to created_at, got %s", created.Name)
	}
	if created.Type != "datetime" {
		t.Errorf("LocalDateTime should map to datetime, got %s", created.Type)
	}

	article := classes[1]
	accountID := article.Fields[1]
	if accountID.Name != "account_id" {
		t.Errorf("accountId should normalize to account_id, got %s", accountID.Name)
	}
	if accountID.Anno.Ref == nil || accountID.Anno.Ref.Entity != "Account" || accountID.Anno.Ref.Field != "id" {
		t.Fatalf("Article.account_id should reference Account.id, got %+v", accountID.Anno.Ref)
	}

	status := article.Fields[2]
	if status.Anno.Default == nil || *status.Anno.Default != "draft" {
		t.Error("Article.status should carry @default draft")
	}
}

func TestParseJava_JPAAliases(t *testing.T) {
	src := `
public class Token {
    @Id
    private Long id;

    @Column(unique = true, nullable = false)
    private String value;
}
`
	classes, err := annotation.ParseJava("token.java", strings.NewReader(src))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	token := classes[0]
	if !token.Fields[0].Anno.PK {
		t.Error("@Id alone should mark the primary key")
	}
	if token.Fields[0].Type != "bigint" {
		t.Errorf("Long should map to bigint, got %s", token.Fields[0].Type)
	}
	value := token.Fields[1]
	if !value.Anno.Unique || !value.Anno.NotNull {
		t.Error("@Column(unique = true, nullable = false) should mark unique + notNull")
	}
}

func TestParseJava_ManyToOneAloneIgnored(t *testing.T) {
	src := `
public class Vote {
    @Id
    private Integer id;

    @ManyToOne
    private Integer pollId;
}
`
	classes, err := annotation.ParseJava("vote.java", strings.NewReader(src))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if classes[0].Fields[1].Anno.Ref != nil {
		t.Error("@ManyToOne without a @ref tag names no target and must be ignored")
	}
}
