// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: extraction/v1/extraction.proto

package extractionv1

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type ExtractRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	SourceKey     string                 `protobuf:"bytes,1,opt,name=source_key,json=sourceKey,proto3" json:"source_key,omitempty"`
	DocumentType  string                 `protobuf:"bytes,2,opt,name=document_type,json=documentType,proto3" json:"document_type,omitempty"` // "cv" or "jd"
	Force         bool                   `protobuf:"varint,3,opt,name=force,proto3" json:"force,omitempty"`                                  // bypass all cache checks
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExtractRequest) Reset() {
	*x = ExtractRequest{}
	mi := &file_extraction_v1_extraction_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExtractRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExtractRequest) ProtoMessage() {}

func (x *ExtractRequest) ProtoReflect() protoreflect.Message {
	mi := &file_extraction_v1_extraction_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExtractRequest.ProtoReflect.Descriptor instead.
func (*ExtractRequest) Descriptor() ([]byte, []int) {
	return file_extraction_v1_extraction_proto_rawDescGZIP(), []int{0}
}

func (x *ExtractRequest) GetSourceKey() string {
	if x != nil {
		return x.SourceKey
	}
	return ""
}

func (x *ExtractRequest) GetDocumentType() string {
	if x != nil {
		return x.DocumentType
	}
	return ""
}

func (x *ExtractRequest) GetForce() bool {
	if x != nil {
		return x.Force
	}
	return false
}

type ExtractResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Result        *ExtractionResult      `protobuf:"bytes,1,opt,name=result,proto3" json:"result,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExtractResponse) Reset() {
	*x = ExtractResponse{}
	mi := &file_extraction_v1_extraction_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExtractResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExtractResponse) ProtoMessage() {}

func (x *ExtractResponse) ProtoReflect() protoreflect.Message {
	mi := &file_extraction_v1_extraction_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExtractResponse.ProtoReflect.Descriptor instead.
func (*ExtractResponse) Descriptor() ([]byte, []int) {
	return file_extraction_v1_extraction_proto_rawDescGZIP(), []int{1}
}

func (x *ExtractResponse) GetResult() *ExtractionResult {
	if x != nil {
		return x.Result
	}
	return nil
}

type ExtractionResult struct {
	state             protoimpl.MessageState `protogen:"open.v1"`
	OwnerId           string                 `protobuf:"bytes,1,opt,name=owner_id,json=ownerId,proto3" json:"owner_id,omitempty"`
	DocumentId        string                 `protobuf:"bytes,2,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	Text              string                 `protobuf:"bytes,3,opt,name=text,proto3" json:"text,omitempty"`
	Confidence        float64                `protobuf:"fixed64,4,opt,name=confidence,proto3" json:"confidence,omitempty"` // OCR backend mean line confidence
	Sections          map[string]string      `protobuf:"bytes,5,rep,name=sections,proto3" json:"sections,omitempty" protobuf_key:"bytes,1,opt,name=key" protobuf_val:"bytes,2,opt,name=value"`
	KeyInformation    *KeyInformation        `protobuf:"bytes,6,opt,name=key_information,json=keyInformation,proto3" json:"key_information,omitempty"`
	QualityMetrics    *QualityMetrics        `protobuf:"bytes,7,opt,name=quality_metrics,json=qualityMetrics,proto3" json:"quality_metrics,omitempty"`
	StructuredJson    string                 `protobuf:"bytes,8,opt,name=structured_json,json=structuredJson,proto3" json:"structured_json,omitempty"` // raw JSON document, empty if the step failed
	StructuredJsonKey string                 `protobuf:"bytes,9,opt,name=structured_json_key,json=structuredJsonKey,proto3" json:"structured_json_key,omitempty"`
	Method            string                 `protobuf:"bytes,10,opt,name=method,proto3" json:"method,omitempty"` // cache | sync | async
	unknownFields     protoimpl.UnknownFields
	sizeCache         protoimpl.SizeCache
}

func (x *ExtractionResult) Reset() {
	*x = ExtractionResult{}
	mi := &file_extraction_v1_extraction_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExtractionResult) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExtractionResult) ProtoMessage() {}

func (x *ExtractionResult) ProtoReflect() protoreflect.Message {
	mi := &file_extraction_v1_extraction_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExtractionResult.ProtoReflect.Descriptor instead.
func (*ExtractionResult) Descriptor() ([]byte, []int) {
	return file_extraction_v1_extraction_proto_rawDescGZIP(), []int{2}
}

func (x *ExtractionResult) GetOwnerId() string {
	if x != nil {
		return x.OwnerId
	}
	return ""
}

func (x *ExtractionResult) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

func (x *ExtractionResult) GetText() string {
	if x != nil {
		return x.Text
	}
	return ""
}

func (x *ExtractionResult) GetConfidence() float64 {
	if x != nil {
		return x.Confidence
	}
	return 0
}

func (x *ExtractionResult) GetSections() map[string]string {
	if x != nil {
		return x.Sections
	}
	return nil
}

func (x *ExtractionResult) GetKeyInformation() *KeyInformation {
	if x != nil {
		return x.KeyInformation
	}
	return nil
}

func (x *ExtractionResult) GetQualityMetrics() *QualityMetrics {
	if x != nil {
		return x.QualityMetrics
	}
	return nil
}

func (x *ExtractionResult) GetStructuredJson() string {
	if x != nil {
		return x.StructuredJson
	}
	return ""
}

func (x *ExtractionResult) GetStructuredJsonKey() string {
	if x != nil {
		return x.StructuredJsonKey
	}
	return ""
}

func (x *ExtractionResult) GetMethod() string {
	if x != nil {
		return x.Method
	}
	return ""
}

type KeyInformation struct {
	state           protoimpl.MessageState `protogen:"open.v1"`
	Emails          []string               `protobuf:"bytes,1,rep,name=emails,proto3" json:"emails,omitempty"`
	Phones          []string               `protobuf:"bytes,2,rep,name=phones,proto3" json:"phones,omitempty"`
	YearsMentioned  []int32                `protobuf:"varint,3,rep,packed,name=years_mentioned,json=yearsMentioned,proto3" json:"years_mentioned,omitempty"`
	SkillsMentioned []string               `protobuf:"bytes,4,rep,name=skills_mentioned,json=skillsMentioned,proto3" json:"skills_mentioned,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *KeyInformation) Reset() {
	*x = KeyInformation{}
	mi := &file_extraction_v1_extraction_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *KeyInformation) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*KeyInformation) ProtoMessage() {}

func (x *KeyInformation) ProtoReflect() protoreflect.Message {
	mi := &file_extraction_v1_extraction_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use KeyInformation.ProtoReflect.Descriptor instead.
func (*KeyInformation) Descriptor() ([]byte, []int) {
	return file_extraction_v1_extraction_proto_rawDescGZIP(), []int{3}
}

func (x *KeyInformation) GetEmails() []string {
	if x != nil {
		return x.Emails
	}
	return nil
}

func (x *KeyInformation) GetPhones() []string {
	if x != nil {
		return x.Phones
	}
	return nil
}

func (x *KeyInformation) GetYearsMentioned() []int32 {
	if x != nil {
		return x.YearsMentioned
	}
	return nil
}

func (x *KeyInformation) GetSkillsMentioned() []string {
	if x != nil {
		return x.SkillsMentioned
	}
	return nil
}

type QualityMetrics struct {
	state               protoimpl.MessageState `protogen:"open.v1"`
	WordCount           int32                  `protobuf:"varint,1,opt,name=word_count,json=wordCount,proto3" json:"word_count,omitempty"`
	CharCount           int32                  `protobuf:"varint,2,opt,name=char_count,json=charCount,proto3" json:"char_count,omitempty"`
	LineCount           int32                  `protobuf:"varint,3,opt,name=line_count,json=lineCount,proto3" json:"line_count,omitempty"`
	SentenceCount       int32                  `protobuf:"varint,4,opt,name=sentence_count,json=sentenceCount,proto3" json:"sentence_count,omitempty"`
	AvgWordsPerSentence float64                `protobuf:"fixed64,5,opt,name=avg_words_per_sentence,json=avgWordsPerSentence,proto3" json:"avg_words_per_sentence,omitempty"`
	AvgCharsPerWord     float64                `protobuf:"fixed64,6,opt,name=avg_chars_per_word,json=avgCharsPerWord,proto3" json:"avg_chars_per_word,omitempty"`
	EstimatedConfidence float64                `protobuf:"fixed64,7,opt,name=estimated_confidence,json=estimatedConfidence,proto3" json:"estimated_confidence,omitempty"` // heuristic, not the OCR confidence
	unknownFields       protoimpl.UnknownFields
	sizeCache           protoimpl.SizeCache
}

func (x *QualityMetrics) Reset() {
	*x = QualityMetrics{}
	mi := &file_extraction_v1_extraction_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *QualityMetrics) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*QualityMetrics) ProtoMessage() {}

func (x *QualityMetrics) ProtoReflect() protoreflect.Message {
	mi := &file_extraction_v1_extraction_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use QualityMetrics.ProtoReflect.Descriptor instead.
func (*QualityMetrics) Descriptor() ([]byte, []int) {
	return file_extraction_v1_extraction_proto_rawDescGZIP(), []int{4}
}

func (x *QualityMetrics) GetWordCount() int32 {
	if x != nil {
		return x.WordCount
	}
	return 0
}

func (x *QualityMetrics) GetCharCount() int32 {
	if x != nil {
		return x.CharCount
	}
	return 0
}

func (x *QualityMetrics) GetLineCount() int32 {
	if x != nil {
		return x.LineCount
	}
	return 0
}

func (x *QualityMetrics) GetSentenceCount() int32 {
	if x != nil {
		return x.SentenceCount
	}
	return 0
}

func (x *QualityMetrics) GetAvgWordsPerSentence() float64 {
	if x != nil {
		return x.AvgWordsPerSentence
	}
	return 0
}

func (x *QualityMetrics) GetAvgCharsPerWord() float64 {
	if x != nil {
		return x.AvgCharsPerWord
	}
	return 0
}

func (x *QualityMetrics) GetEstimatedConfidence() float64 {
	if x != nil {
		return x.EstimatedConfidence
	}
	return 0
}

type ExtractionRecord struct {
	state             protoimpl.MessageState `protogen:"open.v1"`
	DocumentId        string                 `protobuf:"bytes,1,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	OwnerId           string                 `protobuf:"bytes,2,opt,name=owner_id,json=ownerId,proto3" json:"owner_id,omitempty"`
	DocumentType      string                 `protobuf:"bytes,3,opt,name=document_type,json=documentType,proto3" json:"document_type,omitempty"`
	SourceFingerprint string                 `protobuf:"bytes,4,opt,name=source_fingerprint,json=sourceFingerprint,proto3" json:"source_fingerprint,omitempty"`
	RawExtractKey     string                 `protobuf:"bytes,5,opt,name=raw_extract_key,json=rawExtractKey,proto3" json:"raw_extract_key,omitempty"`
	StructuredJsonKey string                 `protobuf:"bytes,6,opt,name=structured_json_key,json=structuredJsonKey,proto3" json:"structured_json_key,omitempty"`
	OcrConfidence     float64                `protobuf:"fixed64,7,opt,name=ocr_confidence,json=ocrConfidence,proto3" json:"ocr_confidence,omitempty"`
	LastExtractedAt   string                 `protobuf:"bytes,8,opt,name=last_extracted_at,json=lastExtractedAt,proto3" json:"last_extracted_at,omitempty"` // RFC 3339
	unknownFields     protoimpl.UnknownFields
	sizeCache         protoimpl.SizeCache
}

func (x *ExtractionRecord) Reset() {
	*x = ExtractionRecord{}
	mi := &file_extraction_v1_extraction_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExtractionRecord) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExtractionRecord) ProtoMessage() {}

func (x *ExtractionRecord) ProtoReflect() protoreflect.Message {
	mi := &file_extraction_v1_extraction_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExtractionRecord.ProtoReflect.Descriptor instead.
func (*ExtractionRecord) Descriptor() ([]byte, []int) {
	return file_extraction_v1_extraction_proto_rawDescGZIP(), []int{5}
}

func (x *ExtractionRecord) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

func (x *ExtractionRecord) GetOwnerId() string {
	if x != nil {
		return x.OwnerId
	}
	return ""
}

func (x *ExtractionRecord) GetDocumentType() string {
	if x != nil {
		return x.DocumentType
	}
	return ""
}

func (x *ExtractionRecord) GetSourceFingerprint() string {
	if x != nil {
		return x.SourceFingerprint
	}
	return ""
}

func (x *ExtractionRecord) GetRawExtractKey() string {
	if x != nil {
		return x.RawExtractKey
	}
	return ""
}

func (x *ExtractionRecord) GetStructuredJsonKey() string {
	if x != nil {
		return x.StructuredJsonKey
	}
	return ""
}

func (x *ExtractionRecord) GetOcrConfidence() float64 {
	if x != nil {
		return x.OcrConfidence
	}
	return 0
}

func (x *ExtractionRecord) GetLastExtractedAt() string {
	if x != nil {
		return x.LastExtractedAt
	}
	return ""
}

type GetExtractionRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	DocumentId    string                 `protobuf:"bytes,1,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetExtractionRequest) Reset() {
	*x = GetExtractionRequest{}
	mi := &file_extraction_v1_extraction_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetExtractionRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetExtractionRequest) ProtoMessage() {}

func (x *GetExtractionRequest) ProtoReflect() protoreflect.Message {
	mi := &file_extraction_v1_extraction_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetExtractionRequest.ProtoReflect.Descriptor instead.
func (*GetExtractionRequest) Descriptor() ([]byte, []int) {
	return file_extraction_v1_extraction_proto_rawDescGZIP(), []int{6}
}

func (x *GetExtractionRequest) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

type GetExtractionResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Record        *ExtractionRecord      `protobuf:"bytes,1,opt,name=record,proto3" json:"record,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetExtractionResponse) Reset() {
	*x = GetExtractionResponse{}
	mi := &file_extraction_v1_extraction_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetExtractionResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetExtractionResponse) ProtoMessage() {}

func (x *GetExtractionResponse) ProtoReflect() protoreflect.Message {
	mi := &file_extraction_v1_extraction_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetExtractionResponse.ProtoReflect.Descriptor instead.
func (*GetExtractionResponse) Descriptor() ([]byte, []int) {
	return file_extraction_v1_extraction_proto_rawDescGZIP(), []int{7}
}

func (x *GetExtractionResponse) GetRecord() *ExtractionRecord {
	if x != nil {
		return x.Record
	}
	return nil
}

type ListExtractionsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	OwnerId       string                 `protobuf:"bytes,1,opt,name=owner_id,json=ownerId,proto3" json:"owner_id,omitempty"`
	DocumentType  string                 `protobuf:"bytes,2,opt,name=document_type,json=documentType,proto3" json:"document_type,omitempty"` // optional filter
	PageSize      int32                  `protobuf:"varint,3,opt,name=page_size,json=pageSize,proto3" json:"page_size,omitempty"`
	Offset        int32                  `protobuf:"varint,4,opt,name=offset,proto3" json:"offset,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListExtractionsRequest) Reset() {
	*x = ListExtractionsRequest{}
	mi := &file_extraction_v1_extraction_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListExtractionsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListExtractionsRequest) ProtoMessage() {}

func (x *ListExtractionsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_extraction_v1_extraction_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListExtractionsRequest.ProtoReflect.Descriptor instead.
func (*ListExtractionsRequest) Descriptor() ([]byte, []int) {
	return file_extraction_v1_extraction_proto_rawDescGZIP(), []int{8}
}

func (x *ListExtractionsRequest) GetOwnerId() string {
	if x != nil {
		return x.OwnerId
	}
	return ""
}

func (x *ListExtractionsRequest) GetDocumentType() string {
	if x != nil {
		return x.DocumentType
	}
	return ""
}

func (x *ListExtractionsRequest) GetPageSize() int32 {
	if x != nil {
		return x.PageSize
	}
	return 0
}

func (x *ListExtractionsRequest) GetOffset() int32 {
	if x != nil {
		return x.Offset
	}
	return 0
}

type ListExtractionsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Records       []*ExtractionRecord    `protobuf:"bytes,1,rep,name=records,proto3" json:"records,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListExtractionsResponse) Reset() {
	*x = ListExtractionsResponse{}
	mi := &file_extraction_v1_extraction_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListExtractionsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListExtractionsResponse) ProtoMessage() {}

func (x *ListExtractionsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_extraction_v1_extraction_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListExtractionsResponse.ProtoReflect.Descriptor instead.
func (*ListExtractionsResponse) Descriptor() ([]byte, []int) {
	return file_extraction_v1_extraction_proto_rawDescGZIP(), []int{9}
}

func (x *ListExtractionsResponse) GetRecords() []*ExtractionRecord {
	if x != nil {
		return x.Records
	}
	return nil
}

type DeleteExtractionRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	DocumentId    string                 `protobuf:"bytes,1,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	DeleteBlobs   bool                   `protobuf:"varint,2,opt,name=delete_blobs,json=deleteBlobs,proto3" json:"delete_blobs,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteExtractionRequest) Reset() {
	*x = DeleteExtractionRequest{}
	mi := &file_extraction_v1_extraction_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteExtractionRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteExtractionRequest) ProtoMessage() {}

func (x *DeleteExtractionRequest) ProtoReflect() protoreflect.Message {
	mi := &file_extraction_v1_extraction_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteExtractionRequest.ProtoReflect.Descriptor instead.
func (*DeleteExtractionRequest) Descriptor() ([]byte, []int) {
	return file_extraction_v1_extraction_proto_rawDescGZIP(), []int{10}
}

func (x *DeleteExtractionRequest) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

func (x *DeleteExtractionRequest) GetDeleteBlobs() bool {
	if x != nil {
		return x.DeleteBlobs
	}
	return false
}

type DeleteExtractionResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Deleted       bool                   `protobuf:"varint,1,opt,name=deleted,proto3" json:"deleted,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteExtractionResponse) Reset() {
	*x = DeleteExtractionResponse{}
	mi := &file_extraction_v1_extraction_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteExtractionResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteExtractionResponse) ProtoMessage() {}

func (x *DeleteExtractionResponse) ProtoReflect() protoreflect.Message {
	mi := &file_extraction_v1_extraction_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteExtractionResponse.ProtoReflect.Descriptor instead.
func (*DeleteExtractionResponse) Descriptor() ([]byte, []int) {
	return file_extraction_v1_extraction_proto_rawDescGZIP(), []int{11}
}

func (x *DeleteExtractionResponse) GetDeleted() bool {
	if x != nil {
		return x.Deleted
	}
	return false
}

type ExportExtractionsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	OwnerId       string                 `protobuf:"bytes,1,opt,name=owner_id,json=ownerId,proto3" json:"owner_id,omitempty"`
	DocumentType  string                 `protobuf:"bytes,2,opt,name=document_type,json=documentType,proto3" json:"document_type,omitempty"` // optional filter
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportExtractionsRequest) Reset() {
	*x = ExportExtractionsRequest{}
	mi := &file_extraction_v1_extraction_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportExtractionsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportExtractionsRequest) ProtoMessage() {}

func (x *ExportExtractionsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_extraction_v1_extraction_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportExtractionsRequest.ProtoReflect.Descriptor instead.
func (*ExportExtractionsRequest) Descriptor() ([]byte, []int) {
	return file_extraction_v1_extraction_proto_rawDescGZIP(), []int{12}
}

func (x *ExportExtractionsRequest) GetOwnerId() string {
	if x != nil {
		return x.OwnerId
	}
	return ""
}

func (x *ExportExtractionsRequest) GetDocumentType() string {
	if x != nil {
		return x.DocumentType
	}
	return ""
}

type ExportExtractionsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Xlsx          []byte                 `protobuf:"bytes,1,opt,name=xlsx,proto3" json:"xlsx,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportExtractionsResponse) Reset() {
	*x = ExportExtractionsResponse{}
	mi := &file_extraction_v1_extraction_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportExtractionsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportExtractionsResponse) ProtoMessage() {}

func (x *ExportExtractionsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_extraction_v1_extraction_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportExtractionsResponse.ProtoReflect.Descriptor instead.
func (*ExportExtractionsResponse) Descriptor() ([]byte, []int) {
	return file_extraction_v1_extraction_proto_rawDescGZIP(), []int{13}
}

func (x *ExportExtractionsResponse) GetXlsx() []byte {
	if x != nil {
		return x.Xlsx
	}
	return nil
}

var File_extraction_v1_extraction_proto protoreflect.FileDescriptor

const file_extraction_v1_extraction_proto_rawDesc = "" +
	"\n" +
	"\x1eextraction/v1/extraction.proto\x12\rextraction.v1\"j\n" +
	"\x0eExtractRequest\x12\x1d\n" +
	"\n" +
	"source_key\x18\x01 \x01(\tR\tsourceKey\x12#\n" +
	"\rdocument_type\x18\x02 \x01(\tR\fdocumentType\x12\x14\n" +
	"\x05force\x18\x03 \x01(\bR\x05force\"J\n" +
	"\x0fExtractResponse\x127\n" +
	"\x06result\x18\x01 \x01(\v2\x1f.extraction.v1.ExtractionResultR\x06result\"\x8b\x04\n" +
	"\x10ExtractionResult\x12\x19\n" +
	"\bowner_id\x18\x01 \x01(\tR\aownerId\x12\x1f\n" +
	"\vdocument_id\x18\x02 \x01(\tR\n" +
	"documentId\x12\x12\n" +
	"\x04text\x18\x03 \x01(\tR\x04text\x12\x1e\n" +
	"\n" +
	"confidence\x18\x04 \x01(\x01R\n" +
	"confidence\x12I\n" +
	"\bsections\x18\x05 \x03(\v2-.extraction.v1.ExtractionResult.SectionsEntryR\bsections\x12F\n" +
	"\x0fkey_information\x18\x06 \x01(\v2\x1d.extraction.v1.KeyInformationR\x0ekeyInformation\x12F\n" +
	"\x0fquality_metrics\x18\a \x01(\v2\x1d.extraction.v1.QualityMetricsR\x0equalityMetrics\x12'\n" +
	"\x0fstructured_json\x18\b \x01(\tR\x0estructuredJson\x12.\n" +
	"\x13structured_json_key\x18\t \x01(\tR\x11structuredJsonKey\x12\x16\n" +
	"\x06method\x18\n" +
	" \x01(\tR\x06method\x1a;\n" +
	"\rSectionsEntry\x12\x10\n" +
	"\x03key\x18\x01 \x01(\tR\x03key\x12\x14\n" +
	"\x05value\x18\x02 \x01(\tR\x05value:\x028\x01\"\x94\x01\n" +
	"\x0eKeyInformation\x12\x16\n" +
	"\x06emails\x18\x01 \x03(\tR\x06emails\x12\x16\n" +
	"\x06phones\x18\x02 \x03(\tR\x06phones\x12'\n" +
	"\x0fyears_mentioned\x18\x03 \x03(\x05R\x0eyearsMentioned\x12)\n" +
	"\x10skills_mentioned\x18\x04 \x03(\tR\x0fskillsMentioned\"\xa9\x02\n" +
	"\x0eQualityMetrics\x12\x1d\n" +
	"\n" +
	"word_count\x18\x01 \x01(\x05R\twordCount\x12\x1d\n" +
	"\n" +
	"char_count\x18\x02 \x01(\x05R\tcharCount\x12\x1d\n" +
	"\n" +
	"line_count\x18\x03 \x01(\x05R\tlineCount\x12%\n" +
	"\x0esentence_count\x18\x04 \x01(\x05R\rsentenceCount\x123\n" +
	"\x16avg_words_per_sentence\x18\x05 \x01(\x01R\x13avgWordsPerSentence\x12+\n" +
	"\x12avg_chars_per_word\x18\x06 \x01(\x01R\x0favgCharsPerWord\x121\n" +
	"\x14estimated_confidence\x18\a \x01(\x01R\x13estimatedConfidence\"\xcd\x02\n" +
	"\x10ExtractionRecord\x12\x1f\n" +
	"\vdocument_id\x18\x01 \x01(\tR\n" +
	"documentId\x12\x19\n" +
	"\bowner_id\x18\x02 \x01(\tR\aownerId\x12#\n" +
	"\rdocument_type\x18\x03 \x01(\tR\fdocumentType\x12-\n" +
	"\x12source_fingerprint\x18\x04 \x01(\tR\x11sourceFingerprint\x12&\n" +
	"\x0fraw_extract_key\x18\x05 \x01(\tR\rrawExtractKey\x12.\n" +
	"\x13structured_json_key\x18\x06 \x01(\tR\x11structuredJsonKey\x12%\n" +
	"\x0eocr_confidence\x18\a \x01(\x01R\rocrConfidence\x12*\n" +
	"\x11last_extracted_at\x18\b \x01(\tR\x0flastExtractedAt\"7\n" +
	"\x14GetExtractionRequest\x12\x1f\n" +
	"\vdocument_id\x18\x01 \x01(\tR\n" +
	"documentId\"P\n" +
	"\x15GetExtractionResponse\x127\n" +
	"\x06record\x18\x01 \x01(\v2\x1f.extraction.v1.ExtractionRecordR\x06record\"\x8d\x01\n" +
	"\x16ListExtractionsRequest\x12\x19\n" +
	"\bowner_id\x18\x01 \x01(\tR\aownerId\x12#\n" +
	"\rdocument_type\x18\x02 \x01(\tR\fdocumentType\x12\x1b\n" +
	"\tpage_size\x18\x03 \x01(\x05R\bpageSize\x12\x16\n" +
	"\x06offset\x18\x04 \x01(\x05R\x06offset\"T\n" +
	"\x17ListExtractionsResponse\x129\n" +
	"\arecords\x18\x01 \x03(\v2\x1f.extraction.v1.ExtractionRecordR\arecords\"]\n" +
	"\x17DeleteExtractionRequest\x12\x1f\n" +
	"\vdocument_id\x18\x01 \x01(\tR\n" +
	"documentId\x12!\n" +
	"\fdelete_blobs\x18\x02 \x01(\bR\vdeleteBlobs\"4\n" +
	"\x18DeleteExtractionResponse\x12\x18\n" +
	"\adeleted\x18\x01 \x01(\bR\adeleted\"Z\n" +
	"\x18ExportExtractionsRequest\x12\x19\n" +
	"\bowner_id\x18\x01 \x01(\tR\aownerId\x12#\n" +
	"\rdocument_type\x18\x02 \x01(\tR\fdocumentType\"/\n" +
	"\x19ExportExtractionsResponse\x12\x12\n" +
	"\x04xlsx\x18\x01 \x01(\fR\x04xlsx2\x80\x03\n" +
	"\x11ExtractionService\x12H\n" +
	"\aExtract\x12\x1d.extraction.v1.ExtractRequest\x1a\x1e.extraction.v1.ExtractResponse\x12Z\n" +
	"\rGetExtraction\x12#.extraction.v1.GetExtractionRequest\x1a$.extraction.v1.GetExtractionResponse\x12`\n" +
	"\x0fListExtractions\x12%.extraction.v1.ListExtractionsRequest\x1a&.extraction.v1.ListExtractionsResponse\x12c\n" +
	"\x10DeleteExtraction\x12&.extraction.v1.DeleteExtractionRequest\x1a'.extraction.v1.DeleteExtractionResponse2w\n" +
	"\rExportService\x12f\n" +
	"\x11ExportExtractions\x12'.extraction.v1.ExportExtractionsRequest\x1a(.extraction.v1.ExportExtractionsResponseBGZEgithub.com/talentform/docextract/gen/proto/extraction/v1;extractionv1b\x06proto3"

var (
	file_extraction_v1_extraction_proto_rawDescOnce sync.Once
	file_extraction_v1_extraction_proto_rawDescData []byte
)

func file_extraction_v1_extraction_proto_rawDescGZIP() []byte {
	file_extraction_v1_extraction_proto_rawDescOnce.Do(func() {
		file_extraction_v1_extraction_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_extraction_v1_extraction_proto_rawDesc), len(file_extraction_v1_extraction_proto_rawDesc)))
	})
	return file_extraction_v1_extraction_proto_rawDescData
}

var file_extraction_v1_extraction_proto_msgTypes = make([]protoimpl.MessageInfo, 15)
var file_extraction_v1_extraction_proto_goTypes = []any{
	(*ExtractRequest)(nil),            // 0: extraction.v1.ExtractRequest
	(*ExtractResponse)(nil),           // 1: extraction.v1.ExtractResponse
	(*ExtractionResult)(nil),          // 2: extraction.v1.ExtractionResult
	(*KeyInformation)(nil),            // 3: extraction.v1.KeyInformation
	(*QualityMetrics)(nil),            // 4: extraction.v1.QualityMetrics
	(*ExtractionRecord)(nil),          // 5: extraction.v1.ExtractionRecord
	(*GetExtractionRequest)(nil),      // 6: extraction.v1.GetExtractionRequest
	(*GetExtractionResponse)(nil),     // 7: extraction.v1.GetExtractionResponse
	(*ListExtractionsRequest)(nil),    // 8: extraction.v1.ListExtractionsRequest
	(*ListExtractionsResponse)(nil),   // 9: extraction.v1.ListExtractionsResponse
	(*DeleteExtractionRequest)(nil),   // 10: extraction.v1.DeleteExtractionRequest
	(*DeleteExtractionResponse)(nil),  // 11: extraction.v1.DeleteExtractionResponse
	(*ExportExtractionsRequest)(nil),  // 12: extraction.v1.ExportExtractionsRequest
	(*ExportExtractionsResponse)(nil), // 13: extraction.v1.ExportExtractionsResponse
	nil,                               // 14: extraction.v1.ExtractionResult.SectionsEntry
}
var file_extraction_v1_extraction_proto_depIdxs = []int32{
	2,  // 0: extraction.v1.ExtractResponse.result:type_name -> extraction.v1.ExtractionResult
	14, // 1: extraction.v1.ExtractionResult.sections:type_name -> extraction.v1.ExtractionResult.SectionsEntry
	3,  // 2: extraction.v1.ExtractionResult.key_information:type_name -> extraction.v1.KeyInformation
	4,  // 3: extraction.v1.ExtractionResult.quality_metrics:type_name -> extraction.v1.QualityMetrics
	5,  // 4: extraction.v1.GetExtractionResponse.record:type_name -> extraction.v1.ExtractionRecord
	5,  // 5: extraction.v1.ListExtractionsResponse.records:type_name -> extraction.v1.ExtractionRecord
	0,  // 6: extraction.v1.ExtractionService.Extract:input_type -> extraction.v1.ExtractRequest
	6,  // 7: extraction.v1.ExtractionService.GetExtraction:input_type -> extraction.v1.GetExtractionRequest
	8,  // 8: extraction.v1.ExtractionService.ListExtractions:input_type -> extraction.v1.ListExtractionsRequest
	10, // 9: extraction.v1.ExtractionService.DeleteExtraction:input_type -> extraction.v1.DeleteExtractionRequest
	12, // 10: extraction.v1.ExportService.ExportExtractions:input_type -> extraction.v1.ExportExtractionsRequest
	1,  // 11: extraction.v1.ExtractionService.Extract:output_type -> extraction.v1.ExtractResponse
	7,  // 12: extraction.v1.ExtractionService.GetExtraction:output_type -> extraction.v1.GetExtractionResponse
	9,  // 13: extraction.v1.ExtractionService.ListExtractions:output_type -> extraction.v1.ListExtractionsResponse
	11, // 14: extraction.v1.ExtractionService.DeleteExtraction:output_type -> extraction.v1.DeleteExtractionResponse
	13, // 15: extraction.v1.ExportService.ExportExtractions:output_type -> extraction.v1.ExportExtractionsResponse
	11, // [11:16] is the sub-list for method output_type
	6,  // [6:11] is the sub-list for method input_type
	6,  // [6:6] is the sub-list for extension type_name
	6,  // [6:6] is the sub-list for extension extendee
	0,  // [0:6] is the sub-list for field type_name
}

func init() { file_extraction_v1_extraction_proto_init() }
func file_extraction_v1_extraction_proto_init() {
	if File_extraction_v1_extraction_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_extraction_v1_extraction_proto_rawDesc), len(file_extraction_v1_extraction_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   15,
			NumExtensions: 0,
			NumServices:   2,
		},
		GoTypes:           file_extraction_v1_extraction_proto_goTypes,
		DependencyIndexes: file_extraction_v1_extraction_proto_depIdxs,
		MessageInfos:      file_extraction_v1_extraction_proto_msgTypes,
	}.Build()
	File_extraction_v1_extraction_proto = out.File
	file_extraction_v1_extraction_proto_goTypes = nil
	file_extraction_v1_extraction_proto_depIdxs = nil
}
