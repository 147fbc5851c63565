package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/motorent/internal/model"
	"github.com/motorent/internal/store"
)

func TestLoadAboutPageToleratesPartialFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/page-meta/about":
			w.WriteHeader(http.StatusInternalServerError)
		case "/about-content":
			json.NewEncoder(w).Encode(model.AboutContent{
				Description: "We rent motorbikes.",
				HeroImage:   "/media/shop.jpg",
			})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	svc := NewSyncService(store.New(server.URL))
	page, failed := svc.LoadAboutPage(context.Background())

	if len(failed) != 1 || failed[0] != "meta" {
		t.Fatalf("expected only the meta fetch to fail, got %v", failed)
	}
	// 失败的部分停留在零值，页面可以部分渲染
	if page.Meta != (model.PageMeta{}) {
		t.Fatalf("failed fetch must leave meta at its zero value, got %+v", page.Meta)
	}
	if page.Content.Description != "We rent motorbikes." {
		t.Fatalf("sibling fetch must still land, got %+v", page.Content)
	}
}

func TestSaveAboutPagePartialFailureNamesBothHalves(t *testing.T) {
	var mu sync.Mutex
	saved := map[string]bool{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		switch r.URL.Path {
		case "/page-meta/about":
			mu.Lock()
			saved["meta"] = true
			mu.Unlock()
		case "/about-content":
			w.WriteHeader(http.StatusInternalServerError)
		}
	}))
	defer server.Close()

	svc := NewSyncService(store.New(server.URL).WithToken("t"))
	err := svc.SaveAboutPage(context.Background(), model.PageMeta{HeaderTitle: "About us"}, model.AboutContent{Description: "x"})
	if err == nil {
		t.Fatal("expected aggregate failure")
	}

	// 提示信息要点名保存成功与失败的部分，而不是一条不透明的失败
	if !strings.Contains(err.Error(), "header saved") || !strings.Contains(err.Error(), "content failed") {
		t.Fatalf("expected named halves in %q", err.Error())
	}

	// 成功的写入不回滚，效果保留在存储侧
	mu.Lock()
	defer mu.Unlock()
	if !saved["meta"] {
		t.Fatal("the succeeding write must remain visible")
	}
}

func TestSaveAboutPageAllSucceed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	svc := NewSyncService(store.New(server.URL).WithToken("t"))
	if err := svc.SaveAboutPage(context.Background(), model.PageMeta{}, model.AboutContent{}); err != nil {
		t.Fatalf("expected success, got %v", err)
	}
}

func TestLoadHomePagePreservesStoreOrder(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/hero-slides":
			// order 字段乱序返回，核心不做排序
			json.NewEncoder(w).Encode([]model.HeroSlide{
				{ID: 1, Title: "Second", Order: 2},
				{ID: 2, Title: "First", Order: 1},
			})
		case "/features", "/policies":
			w.Write([]byte(`[]`))
		default:
			w.Write([]byte(`{}`))
		}
	}))
	defer server.Close()

	svc := NewSyncService(store.New(server.URL))
	page, failed := svc.LoadHomePage(context.Background())
	if len(failed) != 0 {
		t.Fatalf("expected a clean load, failed parts: %v", failed)
	}
	if page.Slides[0].Title != "Second" || page.Slides[1].Title != "First" {
		t.Fatal("slides must keep the store's order; the core does not sort by Order")
	}
}

func TestLoadContactPageMergesThreeFetches(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/page-meta/contact":
			json.NewEncoder(w).Encode(model.PageMeta{HeaderTitle: "Get in touch"})
		case "/contact-info":
			json.NewEncoder(w).Encode(model.ContactInfo{Phone: "07700900000"})
		case "/contact-fields":
			json.NewEncoder(w).Encode([]model.ContactField{{ID: 1, Label: "Name", IsRequired: true}})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	svc := NewSyncService(store.New(server.URL))
	page, failed := svc.LoadContactPage(context.Background())
	if len(failed) != 0 {
		t.Fatalf("expected a clean load, failed parts: %v", failed)
	}
	if page.Meta.HeaderTitle != "Get in touch" || page.Info.Phone != "07700900000" || len(page.Fields) != 1 {
		t.Fatalf("merged page incomplete: %+v", page)
	}
}
